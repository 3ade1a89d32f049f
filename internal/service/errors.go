package service

import "errors"

// Sentinel errors the handlers map to HTTP status codes.
var (
	ErrRoomClosed      = errors.New("room is closed")
	ErrEmptyContent    = errors.New("message content is empty")
	ErrTopicRestricted = errors.New("topic is restricted")
	ErrUsernameTaken   = errors.New("username taken")
)
