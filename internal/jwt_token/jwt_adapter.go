package jwttoken

import (
	"fastlp/internal/platform/middleware"
)

// JWTServiceAdapter bridges JWTService to the middleware.JWTValidator
// interface so the auth middleware stays decoupled from token internals.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*middleware.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.JWTClaims{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		ClientID:  claims.ClientID,
	}, nil
}
