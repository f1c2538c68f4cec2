// Package config holds the bot configuration conventions layered on top of a
// flat key-value store: the command prefix, the authentication token and the
// error types shared by store implementations.
package config

// Source reports where Load found the configuration it read.
type Source int

const (
	// SourceFile means the backing file was read.
	SourceFile Source = iota
	// SourceBundled means the backing file was missing and the bundled
	// default resource of the same name was read instead.
	SourceBundled
	// SourceEmpty means neither the file nor a bundled default existed and
	// the store starts with no entries. Calling Save creates the file.
	SourceEmpty
)

func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceBundled:
		return "bundled"
	case SourceEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Store provides key-value access to bot configuration.
// Keys are flat strings. Mutations stay in memory until Save is called.
type Store interface {
	// Path returns the backing file path.
	Path() string

	// Load replaces the in-memory entries with the backing file's contents,
	// falling back to bundled defaults and then to an empty map.
	Load() (Source, error)

	// Get returns the value for key, or def if the key is absent.
	Get(key, def string) string

	// Lookup returns the value for key and whether it was found.
	Lookup(key string) (string, bool)

	// GetOrInsertDefault returns the value for key. If the key is absent,
	// def is stored in memory first.
	GetOrInsertDefault(key, def string) string

	// Put writes key=value in memory.
	Put(key, value string)

	// Remove deletes key in memory.
	Remove(key string)

	// All returns a copy of all key-value pairs.
	All() map[string]string

	// Save writes every entry to the backing file, replacing its contents.
	Save() error
}
