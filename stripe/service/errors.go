package service

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrEmptyPayload     = errors.New("empty webhook payload")
)
