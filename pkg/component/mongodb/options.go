// Package mongodb provides the MongoDB client component for the
// complaint-center service.
package mongodb

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// redactedPassword is the placeholder used when printing passwords.
const redactedPassword = "[REDACTED]"

// Options defines configuration options for MongoDB.
type Options struct {
	// URI is a full MongoDB connection string. When set, it takes
	// precedence over the host/port fields.
	URI string `json:"uri" mapstructure:"uri"`

	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Username string `json:"username" mapstructure:"username"`
	Password string `json:"-" mapstructure:"password"`
	Database string `json:"database" mapstructure:"database"`

	// Connection pool
	MaxPoolSize     uint64        `json:"max-pool-size" mapstructure:"max-pool-size"`
	MinPoolSize     uint64        `json:"min-pool-size" mapstructure:"min-pool-size"`
	MaxConnIdleTime time.Duration `json:"max-conn-idle-time" mapstructure:"max-conn-idle-time"`

	// Timeouts
	ConnectTimeout         time.Duration `json:"connect-timeout" mapstructure:"connect-timeout"`
	ServerSelectionTimeout time.Duration `json:"server-selection-timeout" mapstructure:"server-selection-timeout"`

	ReplicaSet string `json:"replica-set" mapstructure:"replica-set"`
	AuthSource string `json:"auth-source" mapstructure:"auth-source"`
	Direct     bool   `json:"direct" mapstructure:"direct"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Host:                   "127.0.0.1",
		Port:                   27017,
		Database:               "complaint_center",
		MaxPoolSize:            100,
		MinPoolSize:            10,
		MaxConnIdleTime:        5 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 30 * time.Second,
		AuthSource:             "admin",
	}
}

// AddFlags adds MongoDB flags to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.URI, "mongo.uri", o.URI, "MongoDB connection URI (overrides host/port)")
	fs.StringVar(&o.Host, "mongo.host", o.Host, "MongoDB host")
	fs.IntVar(&o.Port, "mongo.port", o.Port, "MongoDB port")
	fs.StringVar(&o.Username, "mongo.username", o.Username, "MongoDB username")
	fs.StringVar(&o.Password, "mongo.password", o.Password, "MongoDB password")
	fs.StringVar(&o.Database, "mongo.database", o.Database, "MongoDB database name")
	fs.Uint64Var(&o.MaxPoolSize, "mongo.max-pool-size", o.MaxPoolSize, "Maximum connection pool size")
	fs.Uint64Var(&o.MinPoolSize, "mongo.min-pool-size", o.MinPoolSize, "Minimum connection pool size")
	fs.DurationVar(&o.ConnectTimeout, "mongo.connect-timeout", o.ConnectTimeout, "Connection timeout")
}

// Validate validates the MongoDB options.
func (o *Options) Validate() error {
	if o.URI != "" {
		return nil
	}
	if o.Host == "" {
		return fmt.Errorf("mongo host is required when uri is not provided")
	}
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("mongo port must be between 1 and 65535, got %d", o.Port)
	}
	if o.Database == "" {
		return fmt.Errorf("mongo database is required")
	}
	return nil
}

// String returns a string representation with the password redacted.
// Safe for logging.
func (o *Options) String() string {
	password := ""
	if o.Password != "" {
		password = redactedPassword
	}
	return fmt.Sprintf("MongoDB{host=%s, port=%d, user=%s, password=%s, database=%s}",
		o.Host, o.Port, o.Username, password, o.Database)
}
