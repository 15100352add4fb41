package waitly

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by NewFromEnv.
const (
	EnvWaitlistID = "WAITLY_WAITLIST_ID"
	EnvAPIKey     = "WAITLY_API_KEY"
	EnvAPIURL     = "WAITLY_API_URL"
)

// NewFromEnv builds a client from environment variables, loading a
// .env file from the working directory first when present. Options
// passed here take precedence over the environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	_ = godotenv.Load()

	if apiURL := os.Getenv(EnvAPIURL); apiURL != "" {
		opts = append([]Option{WithAPIURL(apiURL)}, opts...)
	}
	return New(os.Getenv(EnvWaitlistID), os.Getenv(EnvAPIKey), opts...)
}
