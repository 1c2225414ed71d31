package dal

import "errors"

var (
	ErrEventNotFound         = errors.New("webhook event not found")
	ErrEventAlreadyProcessed = errors.New("webhook event already processed")
)
