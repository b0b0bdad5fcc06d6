// Package env provides the base environment snapshot for build subprocesses.
package env

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Source implements ports.EnvSource. The snapshot is the orchestrator's
// own environment layered with an optional .env file at the project
// root; .env values never override variables already set in the process
// environment (godotenv's load semantics).
type Source struct {
	environ func() []string
	root    string
}

// New creates a Source over the real process environment.
func New(root string) *Source {
	return &Source{
		environ: os.Environ,
		root:    root,
	}
}

// NewWithEnviron creates a Source with an injected environment provider.
// Used by tests to keep the host environment out of assertions.
func NewWithEnviron(root string, environ func() []string) *Source {
	return &Source{
		environ: environ,
		root:    root,
	}
}

// Snapshot returns the base environment as sorted KEY=VALUE pairs. The
// caller owns the returned slice.
func (s *Source) Snapshot() []string {
	envMap := make(map[string]string)
	for _, entry := range s.environ() {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	if dotenv, err := godotenv.Read(filepath.Join(s.root, ".env")); err == nil {
		for k, v := range dotenv {
			if _, exists := envMap[k]; !exists {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}
