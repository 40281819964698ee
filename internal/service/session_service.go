package service

import (
	"fmt"

	"contactbook/internal/auth"
	"contactbook/internal/model"
)

// SessionIssuer turns an authenticated principal into a bearer token.
type SessionIssuer interface {
	Issue(user *model.User) (string, error)
}

type sessionIssuer struct {
	tokens auth.TokenIssuer
}

// NewSessionIssuer creates a SessionIssuer signing with tokens.
func NewSessionIssuer(tokens auth.TokenIssuer) SessionIssuer {
	return &sessionIssuer{tokens: tokens}
}

// Issue performs no validation; user must already be authenticated.
func (s *sessionIssuer) Issue(user *model.User) (string, error) {
	token, err := s.tokens.Sign(auth.Payload{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}
