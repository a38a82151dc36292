package collections

import "github.com/go-kit/log"

// Config holds the runtime configuration of a [Dict].
type Config struct {
	// SaveAssignment suppresses assignment of transform results. When true,
	// Map, Keep and Rem compute their result and then return the receiver
	// with its contents unchanged. Defaults to false.
	SaveAssignment bool

	// Logger receives debug records about binding and suppressed
	// assignments. A nil Logger discards everything.
	Logger log.Logger
}

// DefaultConfig returns a [Config] populated with the defaults.
func DefaultConfig() Config {
	return Config{Logger: log.NewNopLogger()}
}

func (c Config) logger() log.Logger {
	if c.Logger == nil {
		return log.NewNopLogger()
	}
	return c.Logger
}
