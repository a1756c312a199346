package service

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrUpstreamFetch      = errors.New("fetching favorites failed")
	ErrSyncIterationLimit = errors.New("sync stopped at iteration limit")
	ErrSyncAborted        = errors.New("sync aborted")

	ErrSessionInvalid        = errors.New("session is expired or invalid")
	ErrSessionCreationFailed = errors.New("session creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
