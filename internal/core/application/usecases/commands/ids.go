package commands

import (
	"fmt"

	"foodly/internal/pkg/errs"
)

// validateID rejects ids that can never reference a stored row.
func validateID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not a valid id", id))
	}
	return nil
}
