package services

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound covers missing and inactive products alike.
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound also covers rows owned by another user; ownership
	// is never distinguished from non-existence.
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrAssistantUnavailable means the LLM credential is missing.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// InsufficientStockError names the quantity that was actually available.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}
