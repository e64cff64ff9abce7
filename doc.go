/*
Package timeliner keeps a set of non-overlapping half-open intervals ordered by start position.

An item occupies [Start(), End()). Items that touch, where one ends exactly where the next
starts, don't overlap. Insertion checks only the neighbours either side of the new range, and
point lookup finds the item with the greatest start at or before the position, so both are
O(log n).

Simple example:

	var tl timeliner.Timeline[int, timeliner.Span[int]]
	tl.Insert(timeliner.Span[int]{0, 10})
	err := tl.Insert(timeliner.Span[int]{5, 15}) // errors.Is(err, timeliner.ErrOverlap)
	item, ok := tl.Get(7)                        // [0, 10), true

A Timeline does no locking. Wrap it in a Guarded to share it between goroutines.
*/
package timeliner
