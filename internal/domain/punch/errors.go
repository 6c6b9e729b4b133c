package punch

import "errors"

var (
	ErrPunchNotFound = errors.New("punch record not found")
)
