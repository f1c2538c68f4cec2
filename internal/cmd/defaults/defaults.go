// Package defaults bundles the configuration used when no properties file
// exists yet.
package defaults

import "embed"

//go:embed options.properties
var FS embed.FS
