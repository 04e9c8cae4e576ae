// Package auth provides authentication interfaces for the complaint-center
// service.
//
// The authentication flow:
//  1. Client provides credentials (email/password)
//  2. Authenticator.Sign() issues a token carrying identity claims
//  3. Token is included in subsequent requests as a bearer token
//  4. Authenticator.Verify() validates the token and extracts claims
//  5. Claims are injected into the request context for use by handlers
//
// The role claim embedded at sign time is trusted for the token's lifetime;
// a role change is not reflected until the next login.
package auth

import (
	"context"
	"time"
)

// Well-known extra claim keys.
const (
	// ClaimRole carries the account role embedded at token-issuance time.
	ClaimRole = "role"

	// ClaimName carries the account display name.
	ClaimName = "name"
)

// Authenticator defines the authentication interface.
type Authenticator interface {
	// Sign creates a new token for the given subject (account ID).
	Sign(ctx context.Context, subject string, opts ...SignOption) (*Token, error)

	// Verify validates the token and returns the claims.
	// Returns an error if the token is invalid or expired.
	Verify(ctx context.Context, tokenString string) (*Claims, error)

	// Type returns the authenticator type (e.g., "jwt").
	Type() string
}

// Token represents an issued authentication token with metadata.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Claims represents the authentication claims extracted from a token.
type Claims struct {
	// Subject is the principal that is the subject of the token (account ID).
	Subject string `json:"sub"`

	// Issuer is the token issuer.
	Issuer string `json:"iss,omitempty"`

	// ExpiresAt is the expiration time (Unix timestamp).
	ExpiresAt int64 `json:"exp,omitempty"`

	// IssuedAt is the time when the token was issued (Unix timestamp).
	IssuedAt int64 `json:"iat,omitempty"`

	// ID is the unique identifier for the token.
	ID string `json:"jti,omitempty"`

	// Extra contains additional custom claims (role, display name).
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// IsExpired returns true if the token has expired.
func (c *Claims) IsExpired() bool {
	if c.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() > c.ExpiresAt
}

// GetExtraString returns a custom claim as a string.
func (c *Claims) GetExtraString(key string) string {
	if c.Extra == nil {
		return ""
	}
	if s, ok := c.Extra[key].(string); ok {
		return s
	}
	return ""
}

// Role returns the role claim embedded at token-issuance time.
func (c *Claims) Role() string {
	return c.GetExtraString(ClaimRole)
}

// SignOption is a functional option for signing tokens.
type SignOption func(*SignOptions)

// SignOptions contains options for token signing.
type SignOptions struct {
	// ExpiresAt overrides the default expiration time.
	ExpiresAt *time.Time

	// Extra contains additional claims to include in the token.
	Extra map[string]interface{}
}

// WithExpiresAt sets a custom expiration time.
func WithExpiresAt(t time.Time) SignOption {
	return func(o *SignOptions) {
		o.ExpiresAt = &t
	}
}

// WithExtra sets additional claims.
func WithExtra(extra map[string]interface{}) SignOption {
	return func(o *SignOptions) {
		o.Extra = extra
	}
}
