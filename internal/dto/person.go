package dto

import "time"

// PersonDTO represents a data transfer object (DTO) for a person.
type PersonDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Posts     []PostDTO `json:"posts,omitempty"`
}

// CreatePersonDTO represents a data transfer object (DTO) for creating a person request.
type CreatePersonDTO struct {
	Name string `json:"name"`
	Age  *int   `json:"age,omitempty"`
}
