package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("not found")
	ErrUnavailable           = errors.New("book is not available")
	ErrForbidden             = errors.New("forbidden")
	ErrAlreadyReturned       = errors.New("borrow already returned")
	ErrEmptyOrAllUnavailable = errors.New("nothing to check out")
	ErrConflict              = errors.New("concurrent update conflict, try again")
	ErrUsernameTaken         = errors.New("username is already taken")
	ErrInvalidCredentials    = errors.New("invalid username or password")

	ErrBagEmpty      = fmt.Errorf("%w: bag is empty", ErrEmptyOrAllUnavailable)
	ErrNoneAvailable = fmt.Errorf("%w: no book in the bag is available", ErrEmptyOrAllUnavailable)
)
