package model

import "sync"

// bandPool recycles the per-worker cell buffers used while computing a step
type bandPool struct {
	pool sync.Pool
}

func newBandPool() *bandPool {
	return &bandPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]Cell, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *bandPool) Get() *[]Cell {
	buf := p.pool.Get().(*[]Cell)
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool, clearing its contents
func (p *bandPool) Put(buf *[]Cell) {
	if buf == nil {
		return
	}
	clear(*buf)
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
