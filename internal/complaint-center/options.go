package complaintcenter

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/kart-io/complaint-center/pkg/auth/jwt"
	"github.com/kart-io/complaint-center/pkg/component/mongodb"
	logopts "github.com/kart-io/complaint-center/pkg/options/logger"
)

// ServerOptions contains the HTTP server configuration.
type ServerOptions struct {
	// Addr is the address the HTTP server listens on.
	Addr string `json:"addr" mapstructure:"addr"`

	// Mode is the gin mode: debug, release, or test.
	Mode string `json:"mode" mapstructure:"mode"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`
}

// NewServerOptions creates ServerOptions with defaults.
func NewServerOptions() *ServerOptions {
	return &ServerOptions{
		Addr:            ":8080",
		Mode:            "release",
		ShutdownTimeout: 30 * time.Second,
	}
}

// AddFlags adds server flags to the flagset.
func (o *ServerOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "server.addr", o.Addr, "Address for the HTTP server to listen on")
	fs.StringVar(&o.Mode, "server.mode", o.Mode, "Server mode: debug, release, or test")
	fs.DurationVar(&o.ShutdownTimeout, "server.shutdown-timeout", o.ShutdownTimeout, "Graceful shutdown timeout")
}

// Validate checks the server options.
func (o *ServerOptions) Validate() error {
	if o.Addr == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	switch o.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %s", o.Mode)
	}
	return nil
}

// Options contains the full configuration of the complaint center.
type Options struct {
	Server *ServerOptions   `json:"server" mapstructure:"server"`
	Log    *logopts.Options `json:"log" mapstructure:"log"`
	JWT    *jwt.Options     `json:"jwt" mapstructure:"jwt"`
	Mongo  *mongodb.Options `json:"mongo" mapstructure:"mongo"`
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{
		Server: NewServerOptions(),
		Log:    logopts.NewOptions(),
		JWT:    jwt.NewOptions(),
		Mongo:  mongodb.NewOptions(),
	}
}

// AddFlags adds all component flags to the flagset.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Server.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.JWT.AddFlags(fs)
	o.Mongo.AddFlags(fs)
}

// Complete completes the options with defaults.
func (o *Options) Complete() error {
	return nil
}

// Validate checks all component options.
func (o *Options) Validate() error {
	if err := o.Server.Validate(); err != nil {
		return err
	}
	if err := o.Log.Validate(); err != nil {
		return err
	}
	if err := o.JWT.Validate(); err != nil {
		return err
	}
	return o.Mongo.Validate()
}
