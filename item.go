package timeliner

import (
	"cmp"
	"fmt"
)

// Item is anything occupying the half-open range [Start(), End()). Start() < End() is assumed and
// never checked.
type Item[P any] interface {
	Start() P
	End() P
}

// Span is an Item that is just its bounds, start then end.
type Span[P cmp.Ordered] [2]P

var _ Item[int] = Span[int]{}

func (me Span[P]) Start() P { return me[0] }
func (me Span[P]) End() P   { return me[1] }

func (me Span[P]) Contains(p P) bool {
	return me[0] <= p && p < me[1]
}

func (me Span[P]) Overlaps(other Span[P]) bool {
	return me[0] < other[1] && other[0] < me[1]
}

func (me Span[P]) String() string {
	return fmt.Sprintf("[%v, %v)", me[0], me[1])
}
