package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, expired, or malformed claims. Callers get no further detail.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller extracted from a bearer token.
type Identity struct {
	UserID   int
	Username string
}

type Claims struct {
	UserID   int    `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256-signed identity tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: 24 * time.Hour}
}

// Issue signs a token carrying the user's id and username.
func (s *Service) Issue(userID int, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string and returns the identity it
// carries.
func (s *Service) Verify(tokenStr string) (*Identity, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
