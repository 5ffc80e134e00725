package domain

import "errors"

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidVerdict  = errors.New("invalid verdict")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrNoCredential    = errors.New("completion engine credential missing")
)
