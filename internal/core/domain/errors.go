package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrForbidden          = errors.New("access forbidden")

	ErrRealEstateNotFound = errors.New("real estate not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
	ErrVisitNotFound      = errors.New("visit not found")

	// ErrUnknownRealEstate is returned when a favorite or visit references a
	// listing id that does not resolve.
	ErrUnknownRealEstate = errors.New("referenced real estate does not exist")

	// ErrInvalidLimit is returned by the favorites listing when limite is not
	// one of the allowed page sizes.
	ErrInvalidLimit = errors.New("limite must be 5, 10 or 30")

	ErrInvalidInput = errors.New("invalid input")
)
