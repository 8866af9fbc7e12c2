package advance

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid advance period")
)
