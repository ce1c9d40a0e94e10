package loop

import "time"

type UpdateFrame struct {
	// DeltaTime is the time since the previous frame, in seconds.
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}

// Elapsed returns DeltaTime as a duration.
func (f *UpdateFrame) Elapsed() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
