package launch

import "errors"

var (
	ErrLaunchNotFound = errors.New("launch not found")
)
