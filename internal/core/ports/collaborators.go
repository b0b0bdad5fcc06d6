package ports

import (
	"context"

	"go.fanout.dev/fanout/internal/core/domain"
)

// Collaborators groups the delegated single-shot build phases. Each call
// is a black box that either succeeds or fails as a unit; output is
// streamed through the sink with a phase prefix.
//
//go:generate mockgen -source=collaborators.go -destination=mocks/mock_collaborators.go -package=mocks
type Collaborators interface {
	// GenerateLocalizations compiles the locale resources for the given locales.
	GenerateLocalizations(ctx context.Context, project *domain.Project, locales []string, force bool) error

	// GenerateDeps regenerates the dependency graph consumed by the compiler.
	GenerateDeps(ctx context.Context, project *domain.Project) error

	// CheckStyle runs the style checker, optionally autofixing violations.
	CheckStyle(ctx context.Context, project *domain.Project, fix, force bool) error

	// GenerateDocs builds the API documentation.
	GenerateDocs(ctx context.Context, project *domain.Project, force bool) error

	// CompileStyles compiles one declared style bundle to dist/.
	CompileStyles(ctx context.Context, project *domain.Project, bundle string, force bool) error

	// BuildApps bundles the demo applications for one mode.
	BuildApps(ctx context.Context, project *domain.Project, mode domain.Mode, force bool) error
}
