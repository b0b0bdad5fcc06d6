package ports

// EnvSource provides the base environment snapshot for build subprocesses.
// Making this an interface keeps the ambient process environment out of
// the expander, so tests can inject a synthetic one.
//
//go:generate mockgen -source=env.go -destination=mocks/mock_env.go -package=mocks
type EnvSource interface {
	// Snapshot returns the base environment as KEY=VALUE pairs. Callers
	// own the returned slice; each task gets its own copy.
	Snapshot() []string
}
