package frame

import "time"

// UpdateFrame is passed to every system during one scheduler pass.
type UpdateFrame struct {
	// Elapsed is the time since the previous frame.
	Elapsed time.Duration
	// Number counts frames from 1.
	Number   uint64
	Commands *Commands
}

func newUpdateFrame(elapsed time.Duration, number uint64, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		Elapsed:  elapsed,
		Number:   number,
		Commands: commands,
	}
}
