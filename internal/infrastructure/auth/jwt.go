package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"netgrid/internal/shared/config"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the JWT payload for both token types. Role is only present
// on access tokens.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates the access/refresh token pair.
type JWTManager struct {
	secret     []byte
	accessExp  time.Duration
	refreshExp time.Duration
}

func NewJWTManager(cfg *config.AuthConfig) *JWTManager {
	return &JWTManager{
		secret:     []byte(cfg.JWTSecret),
		accessExp:  time.Duration(cfg.AccessExpMinutes) * time.Minute,
		refreshExp: time.Duration(cfg.RefreshExpDays) * 24 * time.Hour,
	}
}

func (m *JWTManager) GenerateAccessToken(userID uint, role string) (string, error) {
	return m.sign(Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

func (m *JWTManager) GenerateRefreshToken(userID uint) (string, error) {
	return m.sign(Claims{
		UserID:    userID,
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.refreshExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
}

// ValidateAccessToken parses an access token and returns its user ID and
// role.
func (m *JWTManager) ValidateAccessToken(token string) (uint, string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return 0, "", err
	}
	if claims.TokenType != tokenTypeAccess {
		return 0, "", fmt.Errorf("not an access token")
	}
	return claims.UserID, claims.Role, nil
}

// ValidateRefreshToken parses a refresh token and returns its user ID.
func (m *JWTManager) ValidateRefreshToken(token string) (uint, error) {
	claims, err := m.parse(token)
	if err != nil {
		return 0, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return 0, fmt.Errorf("not a refresh token")
	}
	return claims.UserID, nil
}

func (m *JWTManager) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
