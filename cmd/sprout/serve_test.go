package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewServeCmd verifies the serve command wires up correctly.
func TestNewServeCmd(t *testing.T) {
	cmd := newServeCmd()

	assert.Equal(t, "serve", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}
