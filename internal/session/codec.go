package session

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "screenhub"

// DefaultTTL is the fixed session lifetime from issuance.
const DefaultTTL = 8 * time.Hour

// Codec signs and verifies session tokens. Tokens are HS256-signed JWTs keyed
// by a server secret, so a client cannot forge an identity cookie.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type sessionClaims struct {
	FullName string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CodecOption configures Codec behavior.
type CodecOption func(*Codec)

// WithTTL overrides the default session lifetime.
func WithTTL(ttl time.Duration) CodecOption {
	return func(c *Codec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) CodecOption {
	return func(c *Codec) {
		if fn != nil {
			c.now = fn
		}
	}
}

// NewCodec constructs a Codec keyed with the given secret.
func NewCodec(secret string, opts ...CodecOption) (*Codec, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("session: secret is not configured")
	}
	c := &Codec{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL returns the configured session lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encode signs a session token for the given user. The user must carry every
// required field and a known role.
func (c *Codec) Encode(user SessionUser) (string, error) {
	if !user.Valid() {
		return "", ErrInvalidUser
	}
	now := c.now().UTC()
	claims := sessionClaims{
		FullName: user.FullName,
		Email:    user.Email,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a token and reconstructs the identity it carries. It is a
// total function: empty input, structural failures, bad signatures, expired
// tokens, missing fields and unknown roles all yield nil. Every caller
// treats "no session" and "corrupt session" identically, so errors are
// absorbed rather than surfaced.
func (c *Codec) Decode(token string) *SessionUser {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	role, ok := ParseRole(claims.Role)
	if !ok {
		return nil
	}
	user := SessionUser{
		ID:       id,
		FullName: strings.TrimSpace(claims.FullName),
		Email:    strings.TrimSpace(claims.Email),
		Role:     role,
	}
	if !user.Valid() {
		return nil
	}
	return &user
}
