package vos

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MapEnv is a VEnv backed by a map, safe for use by one session at a time
// but guarded anyway because the REPL and a host tool may share it.
type MapEnv struct {
	mu  sync.Mutex
	env map[string]string
}

var _ VEnv = (*MapEnv)(nil)

func NewMapEnv() *MapEnv {
	return &MapEnv{env: make(map[string]string)}
}

// NewMapEnvFrom builds an environment from KEY=VALUE pairs.
func NewMapEnvFrom(environ []string) *MapEnv {
	out := NewMapEnv()
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		out.Setenv(key, value)
	}
	return out
}

func (m *MapEnv) Getenv(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.env[key]
}

func (m *MapEnv) Setenv(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env[key] = value
}

// Environ returns the environment as sorted KEY=VALUE pairs.
func (m *MapEnv) Environ() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for key, value := range m.env {
		out = append(out, fmt.Sprintf("%s=%s", key, value))
	}
	sort.Strings(out)
	return out
}
