package models

import "time"

// Timestamps provides the audit columns shared by mutable entities
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
