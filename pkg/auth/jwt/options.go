package jwt

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const (
	// DefaultSigningMethod is the default JWT signing algorithm.
	DefaultSigningMethod = "HS256"

	// DefaultExpired is the default token expiration time.
	DefaultExpired = 2 * time.Hour

	// DefaultIssuer is the default token issuer.
	DefaultIssuer = "complaint-center"

	// MinKeyLength is the minimum required key length for HMAC signing.
	MinKeyLength = 32
)

// SupportedSigningMethods contains all supported JWT signing algorithms.
var SupportedSigningMethods = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// Options contains JWT configuration.
type Options struct {
	// Key is the secret key used to sign tokens.
	// Minimum length: 32 characters.
	Key string `json:"-" mapstructure:"key"`

	// SigningMethod is the JWT signing algorithm.
	// Supported: HS256, HS384, HS512.
	// Default: HS256
	SigningMethod string `json:"signing-method" mapstructure:"signing-method"`

	// Expired is the token expiration duration.
	// Default: 2h
	Expired time.Duration `json:"expired" mapstructure:"expired"`

	// Issuer is the token issuer (iss claim).
	// Default: complaint-center
	Issuer string `json:"issuer" mapstructure:"issuer"`
}

// NewOptions creates a new Options with default values.
func NewOptions() *Options {
	return &Options{
		SigningMethod: DefaultSigningMethod,
		Expired:       DefaultExpired,
		Issuer:        DefaultIssuer,
	}
}

// AddFlags adds JWT flags to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Key, "jwt.key", o.Key, "JWT signing key (min 32 characters)")
	fs.StringVar(&o.SigningMethod, "jwt.signing-method", o.SigningMethod, "JWT signing algorithm (HS256|HS384|HS512)")
	fs.DurationVar(&o.Expired, "jwt.expired", o.Expired, "Token expiration duration")
	fs.StringVar(&o.Issuer, "jwt.issuer", o.Issuer, "Token issuer")
}

// Validate validates the JWT options.
func (o *Options) Validate() error {
	if len(o.Key) < MinKeyLength {
		return fmt.Errorf("jwt key must be at least %d characters, got %d", MinKeyLength, len(o.Key))
	}
	if !SupportedSigningMethods[o.SigningMethod] {
		return fmt.Errorf("unsupported jwt signing method: %s", o.SigningMethod)
	}
	if o.Expired <= 0 {
		return fmt.Errorf("jwt expired must be positive, got %s", o.Expired)
	}
	return nil
}
