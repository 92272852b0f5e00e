package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShutdownTimeoutDefault(t *testing.T) {
	cfg := ServerConfig{Port: "8080"}
	assert.Equal(t, 10*time.Second, cfg.shutdownTimeout())
}

func TestShutdownTimeoutExplicit(t *testing.T) {
	cfg := ServerConfig{Port: "8080", ShutdownTimeout: 3 * time.Second}
	assert.Equal(t, 3*time.Second, cfg.shutdownTimeout())
}
