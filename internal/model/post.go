package model

import "time"

// Post represents a model for a post written by a person.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Comment   string    `json:"comment" gorm:"not null"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    *Person   `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
