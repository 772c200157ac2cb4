package userauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smartresume/smartresume/builder/user"
	"github.com/smartresume/smartresume/pkg/errx"
	"github.com/smartresume/smartresume/pkg/kernel"
)

// JWTTokenService implements user.TokenService with HS256 tokens
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

func NewJWTTokenService(secret string, ttl time.Duration, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// Generate issues a signed access token for a user
func (s *JWTTokenService) Generate(userID kernel.UserID, email kernel.Email) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email.String(),
		"iss":   s.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign token", errx.TypeInternal)
	}
	return signed, nil
}

// Validate parses and verifies an access token
func (s *JWTTokenService) Validate(tokenString string) (*user.Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, user.ErrTokenInvalid()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, user.ErrTokenInvalid()
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" {
		return nil, user.ErrTokenInvalid()
	}

	return &user.Claims{
		UserID: kernel.NewUserID(sub),
		Email:  kernel.NewEmail(email),
	}, nil
}
