package ir

import (
	"errors"
)

var (
	ErrMissingValue = errors.New("missing value")
	ErrMissingField = errors.New("missing field")
	ErrConvert      = errors.New("cannot convert value")
	ErrBadPath      = errors.New("bad path")
)
