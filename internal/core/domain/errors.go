package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already exists")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidUpload      = errors.New("invalid upload")
	ErrModelUnavailable   = errors.New("model not loaded")
	ErrPreprocess         = errors.New("failed to preprocess image")
	ErrProcessing         = errors.New("image processing failed")
)
