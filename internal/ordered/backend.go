package ordered

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Backend selects the B-tree implementation behind a Map.
type Backend int

const (
	Ajwerner Backend = iota
	Tidwall
	Google
	Anacrolix
)

var backendNames = [...]string{
	Ajwerner:  "ajwerner",
	Tidwall:   "tidwall",
	Google:    "google",
	Anacrolix: "anacrolix",
}

func (me Backend) String() string {
	if me < 0 || int(me) >= len(backendNames) {
		return fmt.Sprintf("Backend(%d)", int(me))
	}
	return backendNames[me]
}

func Backends() []Backend {
	return []Backend{Ajwerner, Tidwall, Google, Anacrolix}
}

func ParseBackend(s string) (Backend, error) {
	for i, name := range backendNames {
		if strings.EqualFold(s, name) {
			return Backend(i), nil
		}
	}
	return 0, errors.Errorf("unknown ordered map backend %q", s)
}

// New returns an empty Map ordered by cmp. Unknown backends panic.
func New[K, V any](b Backend, cmp CompareFunc[K]) Map[K, V] {
	switch b {
	case Ajwerner:
		return makeAjwernerMap[K, V](cmp)
	case Tidwall:
		return makeTidwallMap[K, V](cmp)
	case Google:
		return makeGoogleMap[K, V](cmp)
	case Anacrolix:
		return makeAnacrolixMap[K, V](cmp)
	default:
		panic(b)
	}
}
