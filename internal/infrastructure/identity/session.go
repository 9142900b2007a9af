package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSession signals a bearer token that cannot be trusted.
	ErrInvalidSession = errors.New("identity: invalid session")
	// ErrSessionNotConfigured signals that no signing secret was provided.
	ErrSessionNotConfigured = errors.New("identity: session verification not configured")
)

// Session is the identity asserted by a verified bearer token.
type Session struct {
	UserID string
	Email  string
}

// SessionVerifier validates HS256 session tokens issued by the auth provider.
type SessionVerifier struct {
	secret []byte
	now    func() time.Time
}

func NewSessionVerifier(secret string) *SessionVerifier {
	return &SessionVerifier{secret: []byte(secret), now: time.Now}
}

// Verify parses and validates a token, returning its subject and email.
func (v *SessionVerifier) Verify(tokenString string) (Session, error) {
	if v == nil || len(v.secret) == 0 {
		return Session{}, ErrSessionNotConfigured
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now), jwt.WithExpirationRequired())
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return Session{}, ErrInvalidSession
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return Session{}, fmt.Errorf("%w: missing sub", ErrInvalidSession)
	}
	email, _ := claims["email"].(string)

	return Session{UserID: sub, Email: strings.TrimSpace(email)}, nil
}

// Issue signs a session token. The production auth provider issues its own;
// this is used by local tooling and tests.
func (v *SessionVerifier) Issue(s Session, ttl time.Duration) (string, error) {
	if v == nil || len(v.secret) == 0 {
		return "", ErrSessionNotConfigured
	}
	now := v.now()
	claims := jwt.MapClaims{
		"sub":   s.UserID,
		"email": s.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
