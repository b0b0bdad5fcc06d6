// Package app implements the phase sequencer driving a full build run.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/core/ports"
	"go.fanout.dev/fanout/internal/engine/plan"
	"go.trai.ch/zerr"
)

// App represents the main application logic: an ordered list of gated
// build phases. Every phase must succeed before the next one starts; the
// first failure halts the whole run. Already-submitted batches still run
// to completion, fail-fast only prevents starting later phases.
type App struct {
	configLoader ports.ConfigLoader
	collab       ports.Collaborators
	pool         ports.Pool
	env          ports.EnvSource
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	collab ports.Collaborators,
	pool ports.Pool,
	env ports.EnvSource,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		collab:       collab,
		pool:         pool,
		env:          env,
		logger:       log,
		tracer:       tracer,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Locales overrides the project's default locale list when non-empty.
	Locales []string

	// Fix lets the style checker autofix violations.
	Fix bool

	// Force rebuilds everything regardless of cached state.
	Force bool

	// Debug and Release restrict the mode set. With neither set, both
	// modes build.
	Debug   bool
	Release bool

	// OnlyES5 restricts the language targets to the baseline, suppressing
	// the cross-product entirely.
	OnlyES5 bool

	// Jobs is the scheduler's concurrency limit. Values below 1 are
	// clamped by the pool.
	Jobs int
}

// Modes resolves the requested mode set. At least one mode always runs.
func (o RunOptions) Modes() []domain.Mode {
	var modes []domain.Mode
	if o.Debug {
		modes = append(modes, domain.ModeDebug)
	}
	if o.Release {
		modes = append(modes, domain.ModeRelease)
	}
	if len(modes) == 0 {
		modes = domain.AllModes()
	}
	return modes
}

// Run executes the full build pipeline: localizations, dependency graph,
// style checks, docs, style sheets, then the library matrix and app
// bundles per requested mode.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	modes := opts.Modes()
	if len(modes) == 0 {
		return domain.ErrNoModesRequested
	}

	locales := opts.Locales
	if len(locales) == 0 {
		locales = project.Locales
	}

	runID := uuid.NewString()
	ctx, root := a.tracer.Start(ctx, "build")
	defer root.End()
	root.SetAttribute("run_id", runID)
	a.logger.Info("starting build run " + runID)

	if err := os.MkdirAll(filepath.Join(project.Root, "dist"), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create dist directory")
	}

	// Localizations run before the dependency graph so their output is
	// visible to the deps system.
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"localizations", func(ctx context.Context) error {
			return a.collab.GenerateLocalizations(ctx, project, locales, opts.Force)
		}},
		{"deps", func(ctx context.Context) error {
			return a.collab.GenerateDeps(ctx, project)
		}},
		{"check", func(ctx context.Context) error {
			return a.collab.CheckStyle(ctx, project, opts.Fix, opts.Force)
		}},
		{"docs", func(ctx context.Context) error {
			return a.collab.GenerateDocs(ctx, project, opts.Force)
		}},
		{"styles:ui", func(ctx context.Context) error {
			return a.collab.CompileStyles(ctx, project, "ui", opts.Force)
		}},
		{"styles:demo", func(ctx context.Context) error {
			return a.collab.CompileStyles(ctx, project, "demo", opts.Force)
		}},
	}

	for _, step := range steps {
		if err := a.phase(ctx, step.name, step.fn); err != nil {
			return a.fail(err)
		}
	}

	for _, mode := range modes {
		if err := a.buildLibraries(ctx, project, mode, locales, opts); err != nil {
			return a.fail(err)
		}

		name := "apps:" + string(mode)
		if err := a.phase(ctx, name, func(ctx context.Context) error {
			return a.collab.BuildApps(ctx, project, mode, opts.Force)
		}); err != nil {
			return a.fail(err)
		}
	}

	a.logger.Info("build run " + runID + " succeeded")
	return nil
}

// fail reports the halting failure and marks the run as failed. The
// entry point exits quietly for this sentinel, so the report happens
// here, next to the phase output it belongs to.
func (a *App) fail(err error) error {
	a.logger.Error(err)
	return errors.Join(domain.ErrBuildExecutionFailed, err)
}

// phase runs one gated collaborator step under its own span.
func (a *App) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, "phase:"+name)
	defer span.End()

	a.logger.Info("phase " + name)
	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, "phase failed"), "phase", name)
	}
	return nil
}

// buildLibraries expands the flavor matrix for one mode and runs the
// batch through the worker pool. The batch runs to completion even when
// tasks fail; the first failing outcome by submission order becomes the
// representative diagnostic.
func (a *App) buildLibraries(
	ctx context.Context,
	project *domain.Project,
	mode domain.Mode,
	locales []string,
	opts RunOptions,
) error {
	ctx, span := a.tracer.Start(ctx, "phase:library:"+string(mode))
	defer span.End()

	targets := project.Targets
	if opts.OnlyES5 {
		// The baseline target is declared first; see config validation.
		targets = targets[:1]
	}

	var globalFlags []string
	if opts.Force {
		globalFlags = append(globalFlags, "--force")
	}

	batch := plan.Expand(
		project.Compiler,
		localizedFlavors(project.Flavors, locales),
		targets,
		mode,
		globalFlags,
		a.env.Snapshot(),
	)
	if len(batch) == 0 {
		err := zerr.With(domain.ErrEmptyBuildPlan, "mode", string(mode))
		span.RecordError(err)
		return err
	}

	digest := plan.Digest(batch)
	span.SetAttribute("tasks", len(batch))
	a.logger.Info(fmt.Sprintf("expanded %d build tasks for %s (plan %016x)", len(batch), mode, digest))

	result := a.pool.RunBatch(ctx, batch, opts.Jobs)

	first, failed := result.FirstFailure()
	if !failed {
		return nil
	}

	if ids := result.FailedIdentities(); len(ids) > 1 {
		a.logger.Warn("failed build tasks: " + strings.Join(ids, ", "))
	}

	// Surface the first failing task (by submission order) with its full
	// command line so the failure is easy to locate in the combined log.
	outcome := result[first]
	err := zerr.With(
		zerr.With(
			zerr.With(domain.ErrBuildTaskFailed, "task", outcome.Identity.String()),
			"exit_code", outcome.ExitCode,
		),
		"command", strings.Join(batch[first].Args, " "),
	)
	if outcome.Err != nil {
		err = zerr.Wrap(outcome.Err, err.Error())
	}
	span.RecordError(err)
	return err
}

// localizedFlavors appends the locale list to every UI-bearing flavor's
// selector tokens. Non-UI bundles embed no localized strings.
func localizedFlavors(flavors []domain.BuildFlavor, locales []string) []domain.BuildFlavor {
	out := make([]domain.BuildFlavor, len(flavors))
	for i, flavor := range flavors {
		out[i] = flavor
		if flavor.HasUI {
			selectors := make([]string, 0, len(flavor.Selectors)+1+len(locales))
			selectors = append(selectors, flavor.Selectors...)
			selectors = append(selectors, "--locales")
			selectors = append(selectors, locales...)
			out[i].Selectors = selectors
		}
	}
	return out
}
