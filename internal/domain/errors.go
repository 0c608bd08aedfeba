package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a single rejected input field. Never retried; the
// caller fixes the input.
type ValidationError struct {
	Schema string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: field %q %s", e.Schema, e.Field, e.Reason)
}

// PaymentDeclinedError is a card-level decline. Terminal for this attempt; the
// user needs a different instrument.
type PaymentDeclinedError struct {
	Code    string
	Message string
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined (%s): %s", e.Code, e.Message)
}

// PaymentGatewayError covers transport failures, timeouts and gateway 5xx. The
// charge outcome may be unknown; callers may retry the whole booking.
type PaymentGatewayError struct {
	Err error
}

func (e *PaymentGatewayError) Error() string {
	return fmt.Sprintf("payment gateway error: %v", e.Err)
}

func (e *PaymentGatewayError) Unwrap() error { return e.Err }

// ChargedNotRecordedError means money moved but a store write after the charge
// failed. Carries everything reconciliation needs; no refund is issued.
type ChargedNotRecordedError struct {
	ChargeID string
	Step     string
	User     string
	Err      error
}

func (e *ChargedNotRecordedError) Error() string {
	return fmt.Sprintf("charge %s succeeded but %s failed for %s: %v", e.ChargeID, e.Step, e.User, e.Err)
}

func (e *ChargedNotRecordedError) Unwrap() error { return e.Err }

// DeliveryError is a failed notification. Logged, never fails the booking.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("notification delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPaymentDeclined(err error) bool {
	var pe *PaymentDeclinedError
	return errors.As(err, &pe)
}

func IsChargedNotRecorded(err error) bool {
	var ce *ChargedNotRecordedError
	return errors.As(err, &ce)
}
