package dto

// TokenDTO represents a data transfer object (DTO) for a token.
type TokenDTO struct {
	Token string `json:"token"`
}
