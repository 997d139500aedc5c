package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrEventNotBookable    = errors.New("event is not available for booking")
	ErrEventFull           = errors.New("event is full")
	ErrAlreadyBooked       = errors.New("you have already booked this event")
	ErrBookingNotConfirmed = errors.New("booking is not confirmed")
	ErrBookingAttended     = errors.New("cannot cancel attended booking")
	ErrEventNotOccurred    = errors.New("cannot mark attendance for future events")
)

var (
	ErrNotAuthorized = errors.New("not authorized")
)

var (
	ErrValidation = errors.New("validation error")
)
