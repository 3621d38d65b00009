package rules

/*
Survives reports whether a living cell with the given number of living
neighbors stays alive into the next generation.

Survival set is {1, 2, 3}: 0 < neighbors < 4. This is wider than the
classical Conway survival set {2, 3}; lone pairs keep each other alive.
*/
func Survives(neighbors int) bool {
	return neighbors > 0 && neighbors < 4
}

/*
Born reports whether a dead cell with the given number of living neighbors
comes alive in the next generation.

Birth set is {2, 3}: 1 < neighbors < 4.
*/
func Born(neighbors int) bool {
	return neighbors > 1 && neighbors < 4
}

// NextAlive applies both rules to a single cell
func NextAlive(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}
