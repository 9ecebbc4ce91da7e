package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/vy-hr/portal-go/internal/domain/session"
)

// Service issues the bearer credentials the dev server hands out at
// login. The claim names match what the portal client decodes:
// employeeId and role.
type Service interface {
	GenerateToken(employeeID string, role session.Role) (string, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessExpiration string
	tokenAuth        *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) Service {
	return &JWTService{
		accessExpiration: accessExpiration,
		tokenAuth:        jwtauth.New("HS256", []byte(secretKey), nil),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(employeeID string, role session.Role) (string, error) {
	expDuration, err := time.ParseDuration(j.accessExpiration)
	if err != nil {
		return "", err
	}

	now := time.Now()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employeeId": employeeID,
		"role":       string(role),
		"iat":        now.Unix(),
		"exp":        now.Add(expDuration).Unix(),
	})
	return tokenString, err
}
