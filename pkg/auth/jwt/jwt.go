// Package jwt provides JWT-based authentication for the complaint-center
// service.
//
// This package implements the auth.Authenticator interface using JSON Web
// Tokens signed with an HMAC key. Identity claims (account ID, role, display
// name) are embedded at sign time and trusted for the lifetime of the token.
//
// Usage:
//
//	jwtAuth, err := jwt.New(
//	    jwt.WithKey("your-secret-key-min-32-chars-long"),
//	    jwt.WithExpired(2 * time.Hour),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := jwtAuth.Sign(ctx, accountID,
//	    auth.WithExtra(map[string]interface{}{auth.ClaimRole: "student"}))
//
//	claims, err := jwtAuth.Verify(ctx, token.AccessToken)
package jwt

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/kart-io/complaint-center/pkg/auth"
	"github.com/kart-io/complaint-center/pkg/errors"
)

// JWT implements auth.Authenticator using JSON Web Tokens.
type JWT struct {
	opts   *Options
	method jwt.SigningMethod
}

// Option is a functional option for the JWT authenticator.
type Option func(*JWT)

// New creates a new JWT authenticator.
func New(opts ...Option) (*JWT, error) {
	j := &JWT{
		opts: NewOptions(),
	}

	for _, opt := range opts {
		opt(j)
	}

	if err := j.opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}

	j.method = jwt.GetSigningMethod(j.opts.SigningMethod)
	if j.method == nil {
		return nil, fmt.Errorf("unsupported signing method: %s", j.opts.SigningMethod)
	}

	return j, nil
}

// WithOptions sets the JWT options.
func WithOptions(opts *Options) Option {
	return func(j *JWT) {
		if opts != nil {
			j.opts = opts
		}
	}
}

// WithKey sets the signing key.
func WithKey(key string) Option {
	return func(j *JWT) {
		j.opts.Key = key
	}
}

// WithExpired sets the token expiration duration.
func WithExpired(d time.Duration) Option {
	return func(j *JWT) {
		j.opts.Expired = d
	}
}

// WithIssuer sets the token issuer.
func WithIssuer(issuer string) Option {
	return func(j *JWT) {
		j.opts.Issuer = issuer
	}
}

// Type returns the authenticator type.
func (j *JWT) Type() string {
	return "jwt"
}

// Sign creates a new token for the given subject.
func (j *JWT) Sign(_ context.Context, subject string, opts ...auth.SignOption) (*auth.Token, error) {
	signOpts := &auth.SignOptions{}
	for _, opt := range opts {
		opt(signOpts)
	}

	now := time.Now()
	expiresAt := now.Add(j.opts.Expired)
	if signOpts.ExpiresAt != nil {
		expiresAt = *signOpts.ExpiresAt
	}

	tokenID, err := generateTokenID()
	if err != nil {
		return nil, err
	}

	claims := &customClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			ID:        tokenID,
		},
		Extra: signOpts.Extra,
	}

	token := jwt.NewWithClaims(j.method, claims)
	tokenString, err := token.SignedString([]byte(j.opts.Key))
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to sign token")
	}

	return &auth.Token{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

// Verify validates the token and returns the claims.
func (j *JWT) Verify(_ context.Context, tokenString string) (*auth.Claims, error) {
	if tokenString == "" {
		return nil, errors.ErrInvalidToken.WithMessage("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &customClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != j.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.opts.Key), nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	if !token.Valid {
		return nil, errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok {
		return nil, errors.ErrInvalidToken.WithMessage("invalid claims type")
	}

	return &auth.Claims{
		Subject:   claims.Subject,
		Issuer:    claims.Issuer,
		ExpiresAt: claims.ExpiresAt.Unix(),
		IssuedAt:  claims.IssuedAt.Unix(),
		ID:        claims.ID,
		Extra:     claims.Extra,
	}, nil
}

// mapParseError maps jwt parse errors to service errors.
func mapParseError(err error) *errors.Errno {
	if err == nil {
		return nil
	}

	switch {
	case strings.Contains(err.Error(), "token is expired"):
		return errors.ErrTokenExpired
	case strings.Contains(err.Error(), "signature is invalid"):
		return errors.ErrInvalidToken.WithMessage("invalid signature")
	case strings.Contains(err.Error(), "token is malformed"):
		return errors.ErrInvalidToken.WithMessage("malformed token")
	case strings.Contains(err.Error(), "token is not valid yet"):
		return errors.ErrInvalidToken.WithMessage("token not valid yet")
	default:
		return errors.ErrInvalidToken.WithCause(err)
	}
}

// customClaims extends jwt.RegisteredClaims with extra fields.
type customClaims struct {
	jwt.RegisteredClaims
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// generateTokenID generates a random token ID.
func generateTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", errors.ErrInternal.WithCause(err).WithMessage("failed to generate token ID")
	}
	return hex.EncodeToString(b), nil
}
