package timeliner

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrOverlap = errors.New("overlaps an existing item")

// Side describes where a rejected item collided with its Conflict.
type Side int

const (
	// The new item starts inside the conflicting item.
	Head Side = iota + 1
	// The conflicting item starts inside the new item.
	Tail
	// Both items start at the same position.
	SameStart
)

func (me Side) String() string {
	switch me {
	case Head:
		return "head"
	case Tail:
		return "tail"
	case SameStart:
		return "same start"
	default:
		return fmt.Sprintf("Side(%d)", int(me))
	}
}

// OverlapError is returned when an item can't be inserted. Item is the rejected item, unchanged, and
// Conflict is the stored item it collided with.
type OverlapError[P any, I Item[P]] struct {
	Item     I
	Conflict I
	Side     Side
}

func (me *OverlapError[P, I]) Error() string {
	return fmt.Sprintf(
		"[%v, %v) %v: %v with [%v, %v)",
		me.Item.Start(), me.Item.End(), ErrOverlap, me.Side,
		me.Conflict.Start(), me.Conflict.End())
}

func (me *OverlapError[P, I]) Unwrap() error {
	return ErrOverlap
}

// Rejected returns the item handed back by a failed Insert or Add.
func Rejected[P any, I Item[P]](err error) (item I, ok bool) {
	var oe *OverlapError[P, I]
	if errors.As(err, &oe) {
		return oe.Item, true
	}
	return
}
