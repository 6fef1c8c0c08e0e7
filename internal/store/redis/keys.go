package redis

const (
	// KeyPrefix namespaces every folio key in a shared Redis database.
	KeyPrefix = "folio:"
)

// Key returns the Redis key for a store key.
func Key(key string) string {
	return KeyPrefix + key
}
