package ignore

import "github.com/bethropolis/dir-tree/internal/utils"

// Option functions for configuration
type Option func(*IgnoreMatcher)

// WithLogger routes pattern parse errors and match tracing to logger.
func WithLogger(logger utils.Logger) Option {
	return func(m *IgnoreMatcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
