package auth

import "travelbook/internal/domain"

// IssueTokenRequest carries the identity an external provider would vouch for.
type IssueTokenRequest struct {
	ID    string `json:"id" validate:"required,max=128"`
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (r IssueTokenRequest) identity() domain.Identity {
	return domain.Identity{ID: r.ID, Name: r.Name, Email: r.Email}
}
