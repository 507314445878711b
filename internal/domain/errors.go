package domain

import "errors"

var (
	ErrNoKilledSessions = errors.New("no killed sessions")
	ErrNoCommand        = errors.New("agent has no command")
	ErrNoModes          = errors.New("session reports no modes")
	ErrSessionExists    = errors.New("session already exists")
	ErrSessionGone      = errors.New("session no longer exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrUnknownMode      = errors.New("mode is not available for this session")
)
