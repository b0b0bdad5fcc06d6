// Package collab invokes the delegated single-shot build phases.
//
// Each phase is an external command configured per project. The
// orchestrator treats it as a black box: it streams the command's output
// through the shared sink under a phase prefix and turns a non-zero exit
// into a phase failure.
package collab

import (
	"context"
	"strings"

	"go.fanout.dev/fanout/internal/adapters/shell"
	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Phases implements ports.Collaborators by shelling out to the
// configured phase commands.
type Phases struct {
	env  ports.EnvSource
	sink ports.Sink
}

// NewPhases creates a new Phases adapter.
func NewPhases(env ports.EnvSource, sink ports.Sink) *Phases {
	return &Phases{
		env:  env,
		sink: sink,
	}
}

// GenerateLocalizations compiles the locale resources.
func (p *Phases) GenerateLocalizations(
	ctx context.Context,
	project *domain.Project,
	locales []string,
	force bool,
) error {
	args := append([]string{"--locales"}, locales...)
	return p.run(ctx, project, "localizations", withForce(args, force))
}

// GenerateDeps regenerates the dependency graph consumed by the compiler.
func (p *Phases) GenerateDeps(ctx context.Context, project *domain.Project) error {
	return p.run(ctx, project, "deps", nil)
}

// CheckStyle runs the style checker.
func (p *Phases) CheckStyle(ctx context.Context, project *domain.Project, fix, force bool) error {
	var args []string
	if fix {
		args = append(args, "--fix")
	}
	return p.run(ctx, project, "check", withForce(args, force))
}

// GenerateDocs builds the API documentation.
func (p *Phases) GenerateDocs(ctx context.Context, project *domain.Project, force bool) error {
	return p.run(ctx, project, "docs", withForce(nil, force))
}

// CompileStyles compiles one declared style bundle.
func (p *Phases) CompileStyles(
	ctx context.Context,
	project *domain.Project,
	bundle string,
	force bool,
) error {
	var found *domain.StyleBundle
	for i := range project.Styles {
		if project.Styles[i].Name == bundle {
			found = &project.Styles[i]
			break
		}
	}
	if found == nil {
		return zerr.With(domain.ErrUnknownStyleBundle, "bundle", bundle)
	}

	args := []string{"--path", found.Path, "--main", found.Main}
	return p.run(ctx, project, "styles", withForce(args, force))
}

// BuildApps bundles the demo applications for one mode.
func (p *Phases) BuildApps(
	ctx context.Context,
	project *domain.Project,
	mode domain.Mode,
	force bool,
) error {
	args := []string{"--mode", string(mode)}
	return p.run(ctx, project, "apps", withForce(args, force))
}

// run executes one phase command with the phase's extra arguments. The
// stderr classification matches the task runner's: [INFO] lines are
// progress notices, everything else carries the [ERR] marker.
func (p *Phases) run(ctx context.Context, project *domain.Project, phase string, extra []string) error {
	cmd := project.PhaseCommand(phase)
	if len(cmd) == 0 {
		return zerr.With(domain.ErrMissingPhaseCommand, "phase", phase)
	}

	argv := make([]string, 0, len(cmd)+len(extra))
	argv = append(argv, cmd...)
	argv = append(argv, extra...)

	prefix := "[" + phase + "]"
	emit := func(line string, isErr bool) {
		if isErr && !strings.HasPrefix(line, "[INFO]") {
			p.sink.ErrLine(prefix, line)
			return
		}
		p.sink.Line(prefix, line)
	}

	exitCode, err := shell.Stream(ctx, argv, p.env.Snapshot(), emit)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPhaseFailed.Error()), "phase", phase)
	}
	if exitCode != 0 {
		return zerr.With(
			zerr.With(domain.ErrPhaseFailed, "phase", phase),
			"exit_code", exitCode,
		)
	}
	return nil
}

func withForce(args []string, force bool) []string {
	if force {
		return append(args, "--force")
	}
	return args
}
