package ir

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// Get reads the first child of y named key and converts its value to T.
// The child must exist and carry a value.
func Get[T any](y *Node, key string) (T, error) {
	var zero T
	child := y.Get(key)
	if child == nil {
		return zero, fmt.Errorf("%w: %q", ErrMissingField, key)
	}
	res, err := ValueAs[T](child)
	if err != nil {
		return zero, fmt.Errorf("field %q: %w", key, err)
	}
	return res, nil
}

// GetOr is like Get but returns def when the child is absent. A child that is
// present but cannot be converted is still an error.
func GetOr[T any](y *Node, key string, def T) (T, error) {
	child := y.Get(key)
	if child == nil || !child.HasValue() {
		return def, nil
	}
	res, err := ValueAs[T](child)
	if err != nil {
		return def, fmt.Errorf("field %q: %w", key, err)
	}
	return res, nil
}

func ValueAs[T any](y *Node) (T, error) {
	var res T
	v, err := y.Value()
	if err != nil {
		return res, err
	}
	if err := convert(v, &res); err != nil {
		return res, err
	}
	return res, nil
}

func convert(v string, dst any) error {
	var err error
	switch d := dst.(type) {
	case *string:
		*d = v
	case *bool:
		*d, err = strconv.ParseBool(v)
	case *time.Duration:
		*d, err = time.ParseDuration(v)
	case *int:
		var i int64
		i, err = strconv.ParseInt(v, 10, strconv.IntSize)
		*d = int(i)
	case *int8:
		var i int64
		i, err = strconv.ParseInt(v, 10, 8)
		*d = int8(i)
	case *int16:
		var i int64
		i, err = strconv.ParseInt(v, 10, 16)
		*d = int16(i)
	case *int32:
		var i int64
		i, err = strconv.ParseInt(v, 10, 32)
		*d = int32(i)
	case *int64:
		*d, err = strconv.ParseInt(v, 10, 64)
	case *uint:
		var u uint64
		u, err = strconv.ParseUint(v, 10, strconv.IntSize)
		*d = uint(u)
	case *uint8:
		var u uint64
		u, err = strconv.ParseUint(v, 10, 8)
		*d = uint8(u)
	case *uint16:
		var u uint64
		u, err = strconv.ParseUint(v, 10, 16)
		*d = uint16(u)
	case *uint32:
		var u uint64
		u, err = strconv.ParseUint(v, 10, 32)
		*d = uint32(u)
	case *uint64:
		*d, err = strconv.ParseUint(v, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(v, 32)
		*d = float32(f)
	case *float64:
		*d, err = strconv.ParseFloat(v, 64)
	case encoding.TextUnmarshaler:
		err = d.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrConvert, dst)
	}
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrConvert, v, err)
	}
	return nil
}
