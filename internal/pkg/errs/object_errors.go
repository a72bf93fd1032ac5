package errs

import "fmt"

// ObjectNotFoundError reports that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return withCause(
			fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)),
			e.Cause,
		)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func (e *ObjectNotFoundError) Is(target error) bool {
	return causeIs(e.Cause, target)
}

// ReferentialViolationError reports an insert that references a row which does
// not exist. It is a specialization of ObjectNotFoundError: errors.Is matches
// both ErrReferentialViolation and ErrObjectNotFound.
type ReferentialViolationError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewReferentialViolationError(paramName string, id any) *ReferentialViolationError {
	return &ReferentialViolationError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewReferentialViolationErrorWithCause(paramName string, id any, cause error) *ReferentialViolationError {
	return &ReferentialViolationError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ReferentialViolationError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s %s does not exist", ErrReferentialViolation, e.ParamName, sanitize(e.ID)),
		e.Cause,
	)
}

func (e *ReferentialViolationError) Unwrap() error {
	return ErrReferentialViolation
}

func (e *ReferentialViolationError) Is(target error) bool {
	return target == ErrObjectNotFound || causeIs(e.Cause, target)
}
