package domain

// Identity is what the external identity provider hands us for the current user.
// It is trusted as is.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
