// Package token reads the claims of platform credentials without verifying
// them. Verification belongs to the platform; callers only use the claims to
// warn about credentials that are about to be rejected.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed credential")

type Payload struct {
	jwt.RegisteredClaims
	Account string `json:"account,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Type    string `json:"type,omitempty"`
}

// Inspect decodes the claims carried by a credential. Opaque (non-JWT)
// credentials yield ErrMalformedToken.
func Inspect(credential string) (*Payload, error) {
	payload := &Payload{}

	_, _, err := jwt.NewParser().ParseUnverified(credential, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	return payload, nil
}

// Expired reports whether the credential is no longer valid at now.
// Credentials without an expiry never expire.
func (p *Payload) Expired(now time.Time) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return !now.Before(p.ExpiresAt.Time)
}
