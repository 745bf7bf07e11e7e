package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientSeats = errors.New("insufficient seats")
	ErrPartialFailure    = errors.New("partial failure")
)

var (
	ErrStationNotFound = fmt.Errorf("station %w", ErrNotFound)
	ErrTrainNotFound   = fmt.Errorf("train %w", ErrNotFound)
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)

	ErrAlreadyCancelled error = conflictError("booking is already cancelled")
)

type conflictError string

func (e conflictError) Error() string { return string(e) }

func (e conflictError) Is(target error) bool { return target == ErrConflict }

type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "please provide all required fields"
	}
	if len(e.Fields) > 0 {
		msg += ": " + strings.Join(e.Fields, ", ")
	}
	return msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Only %d seats available", e.Available)
}

func (e *CapacityError) Is(target error) bool { return target == ErrInsufficientSeats }
