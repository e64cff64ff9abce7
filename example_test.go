package timeliner_test

import (
	"errors"
	"fmt"

	"github.com/cathiecode/timeliner"
)

func Example() {
	var tl timeliner.Timeline[int, timeliner.Span[int]]
	for _, s := range []timeliner.Span[int]{{0, 10}, {10, 20}, {5, 15}} {
		if err := tl.Insert(s); err != nil {
			fmt.Println(err)
		}
	}
	for _, pos := range []int{0, 9, 10, 20} {
		item, ok := tl.Get(pos)
		fmt.Println(pos, item, ok)
	}
	// Output:
	// [5, 15) overlaps an existing item: tail with [10, 20)
	// 0 [0, 10) true
	// 9 [0, 10) true
	// 10 [10, 20) true
	// 20 [0, 0) false
}

func Example_handles() {
	tl := timeliner.New[int, timeliner.Span[int]](nil)
	h, _ := tl.Add(timeliner.Span[int]{0, 10})
	// Another caller replaces the item at the same start.
	tl.Remove(timeliner.Span[int]{0, 10})
	tl.Insert(timeliner.Span[int]{0, 3})
	fmt.Println(tl.RemoveHandle(h), tl.Len())
	// Output:
	// false 1
}

func ExampleRejected() {
	var tl timeliner.Timeline[int, timeliner.Span[int]]
	tl.Insert(timeliner.Span[int]{0, 10})
	err := tl.Insert(timeliner.Span[int]{8, 12})
	if errors.Is(err, timeliner.ErrOverlap) {
		item, _ := timeliner.Rejected[int, timeliner.Span[int]](err)
		fmt.Println("try again after", item)
	}
	// Output:
	// try again after [8, 12)
}
