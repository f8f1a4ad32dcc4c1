package service

import "errors"

var (
	ErrNoAccount      = errors.New("no account selected")
	ErrNoChat         = errors.New("no chat selected")
	ErrEmptyMessage   = errors.New("message is empty")
	ErrUnknownMessage = errors.New("message not found in conversation")
)
