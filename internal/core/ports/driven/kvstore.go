package driven

// KVStore provides durable key-value persistence surviving process
// restarts. It holds the dataset freshness record and user tunables.
type KVStore interface {
	// GetInt64 retrieves an integer value. The second return is false
	// when the key has never been set.
	GetInt64(key string) (int64, bool)

	// SetInt64 stores an integer value and persists it immediately.
	SetInt64(key string, value int64) error

	// GetString retrieves a string value, or "" when unset.
	GetString(key string) string

	// SetString stores a string value and persists it immediately.
	SetString(key, value string) error
}
