package jwtutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/FelipeK57/comandapro-api/pkg/config"
	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrNotInitialized is returned when the signing key has not been configured
	ErrNotInitialized = errors.New("jwtutil: signing key not configured")

	// ErrInvalidToken is returned for tokens that fail signature or structure checks
	ErrInvalidToken = errors.New("jwtutil: invalid token")

	// ErrMissingClaim is returned when a required claim is absent or unparsable
	ErrMissingClaim = errors.New("jwtutil: required claim missing")
)

var signingKey []byte

// Initialize sets the signing key from configuration. Must be called once at
// startup before any token is generated or parsed.
func Initialize(cfg *config.JWTConfig) {
	signingKey = []byte(cfg.SigningKey)
}

// RestaurantID is a claim value that normalizes to uint regardless of whether
// the issuer serialized it as a JSON number or a numeric string.
type RestaurantID uint

// UnmarshalJSON accepts both numeric and quoted-numeric representations
func (r *RestaurantID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return ErrMissingClaim
	}
	// Tokens from other stacks may carry the ID as a float-formatted number
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return fmt.Errorf("%w: restaurant_id %q", ErrMissingClaim, s)
	}
	*r = RestaurantID(f)
	return nil
}

// SessionClaims represents the JWT claims for an authenticated session.
// Subject is the stable user ID; the display name travels in a separate,
// non-trusted claim.
type SessionClaims struct {
	RestaurantID RestaurantID `json:"restaurant_id"`
	FullName     string       `json:"full_name,omitempty"`
	Role         string       `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token bound to a restaurant.
// The token expires ttl from now.
func GenerateToken(userID uint, fullName string, restaurantID uint, role string, ttl time.Duration) (string, error) {
	if len(signingKey) == 0 {
		return "", ErrNotInitialized
	}

	now := time.Now()
	claims := SessionClaims{
		RestaurantID: RestaurantID(restaurantID),
		FullName:     fullName,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ParseToken verifies the signature and structure of a token and returns its
// claims. Expiry is NOT enforced here; callers that care about token lifetime
// must use ValidateToken.
func ParseToken(tokenString string) (*SessionClaims, error) {
	if len(signingKey) == 0 {
		return nil, ErrNotInitialized
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, err := parser.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrMissingClaim
	}

	return claims, nil
}

// ValidateToken reports whether the token decodes successfully and its expiry
// is strictly in the future. It never returns an error: any failure yields false.
func ValidateToken(tokenString string) bool {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return false
	}
	return claims.ExpiresAt.Time.After(time.Now())
}

// ExtractSubject returns the subject (user ID) claim of a token
func ExtractSubject(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractUserID returns the subject claim parsed as a numeric user ID
func ExtractUserID(tokenString string) (uint, error) {
	sub, err := ExtractSubject(tokenString)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: subject %q", ErrMissingClaim, sub)
	}
	return uint(id), nil
}

// ExtractRestaurantID returns the restaurant claim of a token
func ExtractRestaurantID(tokenString string) (uint, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return 0, err
	}
	if claims.RestaurantID == 0 {
		return 0, ErrMissingClaim
	}
	return uint(claims.RestaurantID), nil
}
