package balls

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates the simulation cannot be built from the given
// ball count, diameter and field.
var ErrConfiguration = errors.New("balls: invalid configuration")

// ConfigError wraps ErrConfiguration with the offending parameters.
type ConfigError struct {
	Balls    int
	Cells    int
	Diameter int
	Bounds   Rect
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s (balls=%d cells=%d diameter=%d field=%v)",
		ErrConfiguration, e.Reason, e.Balls, e.Cells, e.Diameter, e.Bounds)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}
