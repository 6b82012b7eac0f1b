package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 3000, cfg.GetInt("port"))
	assert.Equal(t, "usd", cfg.GetString("payment_currency"))
	assert.NotEmpty(t, cfg.GetString("deployed_at"))
}

func TestGetPort(t *testing.T) {
	t.Setenv("LIFENEST_PORT", "4000")
	assert.Equal(t, 4000, GetPort())

	t.Setenv("LIFENEST_PORT", "not-a-number")
	assert.Equal(t, 3000, GetPort())
}
