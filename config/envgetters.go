package config

import (
	"os"
	"strconv"
)

func GetPort() int {
	port := os.Getenv("LIFENEST_PORT")
	if port == "" {
		return 3000
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return 3000
	}
	return p
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// JWTPublicKey returns the PEM encoded RSA public key published by the
// identity provider, used to verify bearer tokens.
func JWTPublicKey() string {
	return os.Getenv("JWT_PUBLIC_KEY")
}

func StripeKey() string {
	return os.Getenv("STRIPE_KEY")
}

func SegmentAPIKey() string {
	return os.Getenv("SEGMENT_API_KEY")
}

func SentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}
