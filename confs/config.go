package confs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings when needed.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		// Only log when the file truly doesn't exist; not an error for runtime
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		return addr
	}
	return ":5555"
}

// SessionTTL returns how long a session stays valid after login.
func SessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			return ttl
		}
		log.Printf("warning: invalid SESSION_TTL %q, using default", v)
	}
	return 24 * time.Hour
}
