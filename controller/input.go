package controller

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Input turns terminal events into controller commands
type Input struct {
	view    *Screen
	pressed bool
}

// NewInput maps mouse clicks through view's last drawn board
func NewInput(view *Screen) *Input {
	return &Input{view: view}
}

// Translate returns the command for ev, if any. A mouse click toggles once
// per press, not once per motion event while held.
func (in *Input) Translate(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return QuitCmd{}, true
		case tcell.KeyEnter:
			return StepCmd{}, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return QuitCmd{}, true
			case ' ':
				return PauseCmd{}, true
			case 'n':
				return StepCmd{}, true
			case 'r':
				return ResetCmd{}, true
			}
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := in.pressed
		in.pressed = down
		if !down || wasDown {
			return nil, false
		}
		if pos, ok := in.view.CellAt(ev.Position()); ok {
			return ToggleCmd{Pos: pos}, true
		}
	}
	return nil, false
}

// Poll reads events from screen and sends the matching commands to ctrl
// until the screen is finalized, a quit key is pressed or ctx ends
func (in *Input) Poll(ctx context.Context, screen tcell.Screen, ctrl *Controller) error {
	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}

		cmd, ok := in.Translate(ev)
		if !ok {
			continue
		}
		if err := ctrl.Send(ctx, cmd); err != nil {
			return err
		}
		if _, quit := cmd.(QuitCmd); quit {
			return nil
		}
	}
}
