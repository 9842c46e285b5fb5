package qkernel

import (
	"errors"
	"fmt"
)

// The two failure classes every operation can return. All validation runs
// before any amplitude is touched, so a non-nil error means the buffers are
// untouched.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnimplemented   = errors.New("unimplemented")
)

func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func unimplementedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnimplemented)
}
