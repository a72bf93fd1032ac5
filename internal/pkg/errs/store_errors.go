package errs

import "fmt"

// StoreUnavailableError reports that a backing store could not be reached.
// It is fatal to the calling request; the core never retries.
type StoreUnavailableError struct {
	Store string
	Cause error
}

func NewStoreUnavailableError(store string) *StoreUnavailableError {
	return &StoreUnavailableError{Store: store}
}

func NewStoreUnavailableErrorWithCause(store string, cause error) *StoreUnavailableError {
	return &StoreUnavailableError{
		Store: store,
		Cause: cause,
	}
}

func (e *StoreUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStoreUnavailable, e.Store), e.Cause)
}

func (e *StoreUnavailableError) Unwrap() error {
	return ErrStoreUnavailable
}

func (e *StoreUnavailableError) Is(target error) bool {
	return causeIs(e.Cause, target)
}
