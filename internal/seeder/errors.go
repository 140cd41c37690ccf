package seeder

import "errors"

var (
	ErrInvalidSeedFile = errors.New("invalid seed file")
	ErrAPIUnavailable  = errors.New("course API is unavailable")
)
