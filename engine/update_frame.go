package engine

// UpdateFrame is passed to every system for a single scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Store     *Store
}

func newUpdateFrame(dt float64, store *Store) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Store:     store,
	}
}
