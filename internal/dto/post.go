package dto

import "time"

// PostDTO represents a data transfer object (DTO) for a post.
type PostDTO struct {
	ID        int64     `json:"id"`
	Comment   string    `json:"comment"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostDTO represents a data transfer object (DTO) for creating a post request.
type CreatePostDTO struct {
	Comment    string `json:"comment"`
	AuthorName string `json:"author_name"`
}
