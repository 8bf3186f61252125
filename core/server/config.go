package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// DefaultSource is the external source name used when a request omits one.
	DefaultSource string `mapstructure:"default_source" default:""`
	// UserHeader is the request header carrying the acting user id.
	UserHeader string `mapstructure:"user_header" default:"X-User-Id"`
}

// SourceOrDefault returns source, or the configured default when source is empty.
func (c Config) SourceOrDefault(source string) string {
	if source != "" {
		return source
	}
	return c.DefaultSource
}
