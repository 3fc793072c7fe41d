package models

import "time"

// User is the local profile row anchoring carts, orders and addresses.
// Authentication itself is delegated to the external identity provider.
type User struct {
	ID          string     `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	FirstName   *string    `json:"firstName" db:"first_name"`
	LastName    *string    `json:"lastName" db:"last_name"`
	Phone       *string    `json:"phone" db:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}
