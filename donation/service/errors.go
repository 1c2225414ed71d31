package service

import "errors"

var (
	ErrDonationAlreadyRecorded = errors.New("donation already recorded for payment intent")
	ErrMissingPaymentIntent    = errors.New("donation is missing a payment intent id")
)
