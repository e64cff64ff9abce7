package timeliner

// Handle identifies the entry stored by one successful Add. It goes stale once that entry is
// removed, even if another item is later stored at the same start.
type Handle[P any] struct {
	start P
	gen   uint64
}

func (me Handle[P]) Start() P {
	return me.start
}

// Handles that didn't come from Add are zero.
func (me Handle[P]) IsZero() bool {
	return me.gen == 0
}
