package session

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestCodec(t *testing.T, opts ...CodecOption) *Codec {
	t.Helper()
	codec, err := NewCodec("test-secret", opts...)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func TestCodecRoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	user := SessionUser{ID: 42, FullName: "Dana Ortiz", Email: "dana@acme.test", Role: RoleManager}

	token, err := codec.Encode(user)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := codec.Decode(token)
	if got == nil {
		t.Fatal("Decode returned nil for a valid token")
	}
	if *got != user {
		t.Fatalf("round trip mismatch: got %+v, want %+v", *got, user)
	}
}

func TestCodecRejectsSecretMissing(t *testing.T) {
	if _, err := NewCodec("   "); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestEncodeRejectsIncompleteUser(t *testing.T) {
	codec := newTestCodec(t)
	cases := map[string]SessionUser{
		"zero id":      {FullName: "A", Email: "a@b.test", Role: RoleUser},
		"missing name": {ID: 1, Email: "a@b.test", Role: RoleUser},
		"missing mail": {ID: 1, FullName: "A", Role: RoleUser},
		"bad role":     {ID: 1, FullName: "A", Email: "a@b.test", Role: Role("root")},
	}
	for name, user := range cases {
		if _, err := codec.Encode(user); err == nil {
			t.Fatalf("%s: expected encode failure", name)
		}
	}
}

func TestDecodeFailsClosed(t *testing.T) {
	codec := newTestCodec(t)
	user := SessionUser{ID: 7, FullName: "Iris Chen", Email: "iris@acme.test", Role: RoleAdmin}
	token, err := codec.Encode(user)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	cases := map[string]string{
		"empty":         "",
		"whitespace":    "   ",
		"not a token":   "hello world",
		"truncated":     token[:len(token)/2],
		"tampered":      token[:len(token)-4] + "AAAA",
		"wrong segment": strings.Replace(token, ".", "_", 1),
	}
	for name, input := range cases {
		if got := codec.Decode(input); got != nil {
			t.Fatalf("%s: expected nil, got %+v", name, *got)
		}
	}
}

func TestDecodeRejectsForeignSignature(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewCodec("other-secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	token, err := other.Encode(SessionUser{ID: 1, FullName: "X", Email: "x@y.test", Role: RoleUser})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := codec.Decode(token); got != nil {
		t.Fatalf("expected nil for token signed with a different secret, got %+v", *got)
	}
}

func signClaims(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign claims: %v", err)
	}
	return token
}

func TestDecodeRejectsMissingFieldsAndBadRole(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()
	base := func() sessionClaims {
		return sessionClaims{
			FullName: "Iris Chen",
			Email:    "iris@acme.test",
			Role:     "viewer",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "7",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
	}

	missingEmail := base()
	missingEmail.Email = ""

	missingName := base()
	missingName.FullName = "  "

	badRole := base()
	badRole.Role = "superadmin"

	badSubject := base()
	badSubject.Subject = "not-a-number"

	wrongIssuer := base()
	wrongIssuer.Issuer = "someone-else"

	for name, claims := range map[string]sessionClaims{
		"missing email": missingEmail,
		"missing name":  missingName,
		"bad role":      badRole,
		"bad subject":   badSubject,
		"wrong issuer":  wrongIssuer,
	} {
		token := signClaims(t, "test-secret", claims)
		if got := codec.Decode(token); got != nil {
			t.Fatalf("%s: expected nil, got %+v", name, *got)
		}
	}
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	issuing := newTestCodec(t, WithClock(func() time.Time { return past }))
	token, err := issuing.Encode(SessionUser{ID: 3, FullName: "Lee", Email: "lee@acme.test", Role: RoleUser})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	verifying := newTestCodec(t)
	if got := verifying.Decode(token); got != nil {
		t.Fatalf("expected nil for expired token, got %+v", *got)
	}
}

func TestCodecTTLOption(t *testing.T) {
	codec := newTestCodec(t, WithTTL(time.Minute))
	if codec.TTL() != time.Minute {
		t.Fatalf("TTL=%v, want 1m", codec.TTL())
	}
	def := newTestCodec(t)
	if def.TTL() != DefaultTTL {
		t.Fatalf("TTL=%v, want %v", def.TTL(), DefaultTTL)
	}
}
