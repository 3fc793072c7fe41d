package models

import "time"

// Category defines the struct for the 'categories' table. Parent is a
// self-reference; the chain is not cycle-checked.
type Category struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description *string   `json:"description" db:"description"`
	ParentID    *string   `json:"parentId,omitempty" db:"parent_id"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
