package controller

import "github.com/sheikhrachel/toroid-life/model"

// Command is a request applied to the simulation by the controller loop
type Command interface {
	apply(c *Controller) (changed bool, err error)
}

// StepCmd advances one step, even while paused
type StepCmd struct{}

// ToggleCmd flips the cell at Pos
type ToggleCmd struct{ Pos model.Position }

// SetAliveCmd makes the cell at Pos alive
type SetAliveCmd struct{ Pos model.Position }

// SetDeadCmd kills the cell at Pos
type SetDeadCmd struct{ Pos model.Position }

// ResetCmd clears the board back to step 0
type ResetCmd struct{}

// PauseCmd pauses or resumes automatic stepping
type PauseCmd struct{}

// QuitCmd stops the controller loop
type QuitCmd struct{}

func (StepCmd) apply(c *Controller) (bool, error) {
	c.sim.Advance()
	return true, nil
}

func (cmd ToggleCmd) apply(c *Controller) (bool, error) {
	if _, err := c.sim.Toggle(cmd.Pos); err != nil {
		return false, err
	}
	return true, nil
}

func (cmd SetAliveCmd) apply(c *Controller) (bool, error) {
	before := c.sim.Current()
	if err := c.sim.SetAlive(cmd.Pos); err != nil {
		return false, err
	}
	return c.sim.Current() != before, nil
}

func (cmd SetDeadCmd) apply(c *Controller) (bool, error) {
	before := c.sim.Current()
	if err := c.sim.SetDead(cmd.Pos); err != nil {
		return false, err
	}
	return c.sim.Current() != before, nil
}

func (ResetCmd) apply(c *Controller) (bool, error) {
	c.sim.Reset()
	return true, nil
}

func (PauseCmd) apply(c *Controller) (bool, error) {
	c.paused = !c.paused
	c.logger.Info("pause toggled", "paused", c.paused)
	return true, nil
}

func (QuitCmd) apply(c *Controller) (bool, error) {
	c.quit = true
	return false, nil
}
