package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrHashingPassword       = errors.New("error hashing password")
	ErrVerifyingPassword     = errors.New("error verifying password")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
