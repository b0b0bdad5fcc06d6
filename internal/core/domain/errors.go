package domain

import "go.trai.ch/zerr"

var (
	// ErrNoModesRequested is returned when the mode set resolves to empty.
	ErrNoModesRequested = zerr.New("no build modes requested")

	// ErrEmptyBuildPlan is returned when expansion yields no tasks for a
	// mandatory mode. An empty plan is a configuration error, not a no-op.
	ErrEmptyBuildPlan = zerr.New("build plan is empty")

	// ErrPhaseFailed is returned when a collaborator phase reports failure.
	ErrPhaseFailed = zerr.New("phase failed")

	// ErrTaskStartFailed is returned when a build subprocess could not be spawned.
	ErrTaskStartFailed = zerr.New("failed to start build task")

	// ErrBuildTaskFailed is returned when a library build task exits non-zero.
	ErrBuildTaskFailed = zerr.New("build task failed")

	// ErrBuildExecutionFailed marks the whole run as failed. The CLI maps
	// it to exit code 1 without double-logging.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrDuplicateFlavorName is returned when two flavors share a display name.
	ErrDuplicateFlavorName = zerr.New("duplicate flavor name")

	// ErrDuplicateTargetSuffix is returned when two language targets share a suffix.
	ErrDuplicateTargetSuffix = zerr.New("duplicate language target suffix")

	// ErrMissingFlavorName is returned when a flavor is declared without a name.
	ErrMissingFlavorName = zerr.New("flavor is missing a name")

	// ErrBaselineNotFirst is returned when the first declared language
	// target is not the suffix-free baseline.
	ErrBaselineNotFirst = zerr.New("the first language target must be the suffix-free baseline")

	// ErrMissingPhaseCommand is returned when a collaborator phase has no command.
	ErrMissingPhaseCommand = zerr.New("phase has no command configured")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingCompilerCommand is returned when no compiler command is configured.
	ErrMissingCompilerCommand = zerr.New("compiler command is not configured")

	// ErrUnknownStyleBundle is returned when a style compilation names an
	// undeclared bundle.
	ErrUnknownStyleBundle = zerr.New("unknown style bundle")
)
