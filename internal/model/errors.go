package model

import "errors"

var (
	ErrInvalidNumber    = errors.New("invalid wheel number")
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrInvalidLossCount = errors.New("invalid consecutive loss count")
	ErrEmptyHistory     = errors.New("history is empty")
	ErrArchiveDisabled  = errors.New("session archive is disabled")
)
