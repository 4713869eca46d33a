package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrProblemNotFound   = errors.New("problem not found")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrCannotUnsolve     = errors.New("a solved problem cannot be marked unsolved")
	ErrInvalidConfidence = errors.New("confidence must be LOW, MEDIUM or HIGH")
	ErrPermissionDenied  = errors.New("permission denied")
)
