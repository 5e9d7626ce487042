// Package config loads and validates the immutable application configuration.
package config

// Config holds all application configuration.
// It is constructed once at process start and treated as immutable; operation
// logic never reads ambient global state.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
	Uploads    UploadsConfig    `mapstructure:"uploads"`
	Redis      RedisConfig      `mapstructure:"redis"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Env      string `mapstructure:"env"       validate:"required,oneof=development production"`
}

// IsProduction reports whether the server runs in a production-grade
// deployment. The session cookie's secure attribute is enabled only then.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"required,gte=4,lte=31"`
}

// PaginationConfig contains the page sizes used by list endpoints.
// The defaults come from a small demo dataset; both are configuration, not
// constants.
type PaginationConfig struct {
	JobPageSize      int `mapstructure:"job_page_size"      validate:"required,gt=0"`
	CompanyListLimit int `mapstructure:"company_list_limit" validate:"required,gt=0"`
}

// UploadsConfig contains file upload settings.
type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

// RedisConfig contains optional Redis settings. When URL is empty the
// rate limiter falls back to an in-memory implementation.
type RedisConfig struct {
	URL string `mapstructure:"url"`
}
