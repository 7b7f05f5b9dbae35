package adapter

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrVersionConflict = errors.New("version conflict")
	ErrServerFailure   = errors.New("server failure")
)
