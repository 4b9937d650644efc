package dto

// RegisterRequest is the body of POST /api/register. The email doubles as the
// login name; passwords shorter than 5 characters are rejected up front.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}
