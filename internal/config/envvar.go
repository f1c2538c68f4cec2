package config

import "os"

// Environment variable names for botkit configuration.
const (
	EnvConfig = "BOTKIT_CONFIG" // Path to the properties file
	EnvToken  = "BOTKIT_TOKEN"  // Override the token; never persisted
)

// DefaultPath is the properties file used when neither a flag nor
// EnvConfig names one.
const DefaultPath = "options.properties"

// ResolvePath picks the properties file path: an explicit path wins, then
// EnvConfig, then DefaultPath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath
}
