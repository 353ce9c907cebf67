package usecases

import "errors"

// Sentinel errors shared by the use cases. Handlers map these to HTTP
// status codes; everything else is treated as a server error.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrEmailTaken         = errors.New("a user with that email already exists")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 5 characters")
	ErrNameRequired       = errors.New("name is required")
	ErrDuplicateName      = errors.New("an object with that name already exists")
	ErrTitleRequired      = errors.New("title is required")
	ErrNegativeValue      = errors.New("minutes and price must not be negative")
	ErrUnknownAttr        = errors.New("unknown tag or ingredient id")
	ErrNotAnImage         = errors.New("payload is not a decodable image")
	ErrImageTooLarge      = errors.New("image exceeds the maximum upload size")
)

const minPasswordLength = 5
