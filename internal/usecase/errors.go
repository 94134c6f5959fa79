package usecase

import "errors"

var (
	ErrWorkNotFound       = errors.New("work not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrValidation         = errors.New("all fields are required")
	ErrWrongPassword      = errors.New("password does not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSettingsExist      = errors.New("site settings already configured")
)
