package domain

import "time"

// MenuItem — позиция меню (админский CRUD проксируется на бэкенд).
type MenuItem struct {
	ID          int       `json:"id,omitempty"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}
