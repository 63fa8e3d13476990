package rolling

import (
	"math/rand/v2"

	"github.com/arloliu/rollstat/internal/options"
)

type config struct {
	rng rand.Source
}

// Option configures a RollingStats.
type Option = options.Option[*config]

// WithRandSource sets the source Rand draws from. By default the global
// math/rand/v2 source is used; a seeded source makes draws reproducible.
func WithRandSource(src rand.Source) Option {
	return options.NoError(func(c *config) {
		c.rng = src
	})
}
