package timeliner

import (
	"github.com/anacrolix/log"

	"github.com/cathiecode/timeliner/internal/ordered"
)

// Backend selects the B-tree implementation a Timeline stores its items in.
type Backend = ordered.Backend

const (
	BackendAjwerner  = ordered.Ajwerner
	BackendTidwall   = ordered.Tidwall
	BackendGoogle    = ordered.Google
	BackendAnacrolix = ordered.Anacrolix
)

// Backends lists every available Backend.
func Backends() []Backend {
	return ordered.Backends()
}

func ParseBackend(s string) (Backend, error) {
	return ordered.ParseBackend(s)
}

var defaultLogger = log.Default.WithNames("timeliner")

// Config for New and NewGuarded. Get a populated one from DefaultConfig.
type Config struct {
	// The zero value is BackendAjwerner.
	Backend Backend
	// Rejected insertions are logged at debug level.
	Logger log.Logger
}

func DefaultConfig() *Config {
	return &Config{
		Backend: BackendAjwerner,
		Logger:  defaultLogger,
	}
}
