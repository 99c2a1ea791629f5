package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidInputError is returned for missing or malformed fields and unknown
// report periods. Nothing is stored when it is returned.
type InvalidInputError struct {
	Err string
}

func (e *InvalidInputError) Error() string {
	return e.Err
}

func InvalidInput(format string, args ...any) error {
	return &InvalidInputError{Err: fmt.Sprintf(format, args...)}
}

func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}
