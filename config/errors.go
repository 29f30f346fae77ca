package config

import "errors"

// Errors reported during resolution.
var (
	ErrNoConfigFile    = errors.New("no configuration file found")
	ErrDuplicateEntry  = errors.New("duplicate schema entry")
	ErrInvalidAuth     = errors.New("invalid auth mode")
	ErrUnknownOption   = errors.New("unknown option")
	ErrMandatoryOption = errors.New("mandatory option missing")
)
