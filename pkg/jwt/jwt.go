package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultLifetime = 7 * 24 * time.Hour

type Claims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	lifetime  time.Duration
}

func NewService(secretKey string) *Service {
	return NewServiceWithLifetime(secretKey, DefaultLifetime)
}

func NewServiceWithLifetime(secretKey string, lifetime time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		lifetime:  lifetime,
	}
}

func (s *Service) GenerateToken(adminID string) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
