package ports

import "go.fanout.dev/fanout/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the project configuration for the given working
	// directory, merging an optional fanout.yaml over the built-in defaults.
	Load(cwd string) (*domain.Project, error)

	// DiscoverRoot walks up from cwd to find the source tree root.
	// Returns cwd itself when no config file exists anywhere above it.
	DiscoverRoot(cwd string) (string, error)
}
