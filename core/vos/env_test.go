package vos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapEnv(t *testing.T) {
	env := NewMapEnv()

	assert.Empty(t, env.Getenv("MISSING"))

	env.Setenv("USER", "alice")
	assert.Equal(t, "alice", env.Getenv("USER"))

	env.Setenv("USER", "bob")
	assert.Equal(t, "bob", env.Getenv("USER"))
}

func TestMapEnv_environSorted(t *testing.T) {
	env := NewMapEnv()
	env.Setenv("ZED", "1")
	env.Setenv("ALPHA", "2")
	env.Setenv("MID", "3")

	assert.Equal(t, []string{"ALPHA=2", "MID=3", "ZED=1"}, env.Environ())
}

func TestNewMapEnvFrom(t *testing.T) {
	env := NewMapEnvFrom([]string{"A=1"})

	assert.Equal(t, "1", env.Getenv("A"))
}
