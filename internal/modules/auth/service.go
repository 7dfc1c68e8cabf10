package auth

import (
	"travelbook/internal/domain"
)

type tokenIssuer interface {
	GenerateToken(id domain.Identity) (string, error)
}

// Service stands in for the external identity provider in development: it
// signs whatever identity it is given. Production deployments construct it
// disabled.
type Service struct {
	jwt     tokenIssuer
	enabled bool
}

func NewService(jwt tokenIssuer, enabled bool) *Service {
	return &Service{jwt: jwt, enabled: enabled}
}

func (s *Service) Enabled() bool {
	return s.enabled
}

func (s *Service) IssueToken(id domain.Identity) (string, error) {
	if !s.enabled {
		return "", ErrIssuerDisabled
	}
	return s.jwt.GenerateToken(id)
}
