package jwtutil

import (
	"errors"
	"testing"
	"time"

	"github.com/FelipeK57/comandapro-api/pkg/config"
	"github.com/golang-jwt/jwt/v4"
)

func initTestKey(t *testing.T) {
	t.Helper()
	Initialize(&config.JWTConfig{SigningKey: "test-signing-key"})
}

func TestGenerateAndParseToken(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(42, "Ana García", 7, "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("subject = %q, want %q", claims.Subject, "42")
	}
	if claims.RestaurantID != 7 {
		t.Errorf("restaurant_id = %d, want 7", claims.RestaurantID)
	}
	if claims.FullName != "Ana García" {
		t.Errorf("full_name = %q, want %q", claims.FullName, "Ana García")
	}
	if claims.Role != "ADMIN" {
		t.Errorf("role = %q, want %q", claims.Role, "ADMIN")
	}
}

func TestGenerateTokenRequiresKey(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: ""})
	defer initTestKey(t)

	if _, err := GenerateToken(1, "x", 1, "MESERO", time.Hour); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("err = %v, want ErrNotInitialized", err)
	}
}

func TestValidateToken(t *testing.T) {
	initTestKey(t)

	fresh, err := GenerateToken(1, "Test", 1, "MESERO", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if !ValidateToken(fresh) {
		t.Error("fresh token should validate")
	}

	expired, err := GenerateToken(1, "Test", 1, "MESERO", -time.Minute)
	if err != nil {
		t.Fatalf("generate expired token: %v", err)
	}
	if ValidateToken(expired) {
		t.Error("expired token should not validate")
	}

	if ValidateToken("not-a-token") {
		t.Error("garbage should not validate")
	}
}

func TestParseTokenIgnoresExpiry(t *testing.T) {
	initTestKey(t)

	expired, err := GenerateToken(9, "Test", 3, "COCINERO", -time.Hour)
	if err != nil {
		t.Fatalf("generate expired token: %v", err)
	}

	// Decoding succeeds even though the token is no longer valid
	claims, err := ParseToken(expired)
	if err != nil {
		t.Fatalf("parse expired token: %v", err)
	}
	if claims.Subject != "9" {
		t.Errorf("subject = %q, want %q", claims.Subject, "9")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(1, "Test", 1, "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	tampered := token[:len(token)-4] + "xxxx"
	if _, err := ParseToken(tampered); err == nil {
		t.Fatal("tampered token parsed without error")
	}
	if ValidateToken(tampered) {
		t.Error("tampered token should not validate")
	}
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	Initialize(&config.JWTConfig{SigningKey: "other-key"})
	token, err := GenerateToken(1, "Test", 1, "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	initTestKey(t)
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with a different key parsed without error")
	}
}

func TestRestaurantIDClaimNormalization(t *testing.T) {
	initTestKey(t)

	// Tokens minted by other stacks may serialize the restaurant as a string
	// or as a float-formatted number. All forms must decode to the same uint.
	cases := []struct {
		name  string
		value interface{}
		want  uint
	}{
		{"number", 15, 15},
		{"quoted string", "15", 15},
		{"float", 15.0, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"sub":           "8",
				"restaurant_id": tc.value,
				"exp":           time.Now().Add(time.Hour).Unix(),
			})
			signed, err := raw.SignedString(signingKey)
			if err != nil {
				t.Fatalf("sign token: %v", err)
			}

			got, err := ExtractRestaurantID(signed)
			if err != nil {
				t.Fatalf("extract restaurant id: %v", err)
			}
			if got != tc.want {
				t.Errorf("restaurant id = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExtractHelpers(t *testing.T) {
	initTestKey(t)

	token, err := GenerateToken(123, "Juan Pérez", 45, "MESERO", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	sub, err := ExtractSubject(token)
	if err != nil {
		t.Fatalf("extract subject: %v", err)
	}
	if sub != "123" {
		t.Errorf("subject = %q, want %q", sub, "123")
	}

	userID, err := ExtractUserID(token)
	if err != nil {
		t.Fatalf("extract user id: %v", err)
	}
	if userID != 123 {
		t.Errorf("user id = %d, want 123", userID)
	}

	restaurantID, err := ExtractRestaurantID(token)
	if err != nil {
		t.Fatalf("extract restaurant id: %v", err)
	}
	if restaurantID != 45 {
		t.Errorf("restaurant id = %d, want 45", restaurantID)
	}
}

func TestExtractRestaurantIDMissingClaim(t *testing.T) {
	initTestKey(t)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "8",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString(signingKey)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := ExtractRestaurantID(signed); !errors.Is(err, ErrMissingClaim) {
		t.Fatalf("err = %v, want ErrMissingClaim", err)
	}
}
