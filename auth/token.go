// Package auth is the identity gate: it signs and verifies bearer tokens and
// decides whether a role may perform an action.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kariqs/amexan-eats-api/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	purposeAccess = "access"
	purposeReset  = "reset"
)

var ErrInvalidToken = errors.New("token is invalid")

type Identity struct {
	UserID uint        `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
}

type Claims struct {
	UserID  uint        `json:"userId"`
	Email   string      `json:"email"`
	Role    models.Role `json:"role"`
	Purpose string      `json:"purpose"`
	jwt.RegisteredClaims
}

type TokenMaker struct {
	secret   []byte
	ttl      time.Duration
	resetTTL time.Duration
	now      func() time.Time
}

func NewTokenMaker(secret string, ttl, resetTTL time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl, resetTTL: resetTTL, now: time.Now}
}

func (m *TokenMaker) GenerateAccessToken(user *models.User) (string, error) {
	return m.generate(user, purposeAccess, m.ttl)
}

func (m *TokenMaker) GenerateResetToken(user *models.User) (string, error) {
	return m.generate(user, purposeReset, m.resetTTL)
}

func (m *TokenMaker) VerifyAccessToken(tokenString string) (*Identity, error) {
	return m.verify(tokenString, purposeAccess)
}

func (m *TokenMaker) VerifyResetToken(tokenString string) (*Identity, error) {
	return m.verify(tokenString, purposeReset)
}

func (m *TokenMaker) generate(user *models.User, purpose string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenMaker) verify(tokenString, purpose string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
