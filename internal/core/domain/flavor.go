// Package domain defines the core value types of the build orchestrator.
package domain

// Mode selects the optimization profile passed to every compiler invocation.
type Mode string

const (
	// ModeDebug builds with assertions and without optimizations.
	ModeDebug Mode = "debug"
	// ModeRelease builds the optimized production bundles.
	ModeRelease Mode = "release"
)

// AllModes returns the full mode set in build order.
func AllModes() []Mode {
	return []Mode{ModeDebug, ModeRelease}
}

// BuildFlavor is a named feature-subset bundle of the library.
// Declared once per run and never mutated.
type BuildFlavor struct {
	// Name is the flavor's display name, used as the base of the task identity.
	Name string

	// Selectors are opaque feature-selector tokens passed to the compiler verbatim.
	Selectors []string

	// HasUI marks flavors whose bundle embeds the UI layer. UI-bearing
	// bundles receive the locale list so localized strings are compiled in.
	HasUI bool
}

// LanguageTarget is a compiler output-language profile.
type LanguageTarget struct {
	// LangOut is the compiler target identifier, e.g. ECMASCRIPT5.
	LangOut string

	// Suffix is appended to task identities when more than one target is
	// in play. Empty for the baseline target.
	Suffix string
}

// StyleBundle names one style-sheet compilation unit.
type StyleBundle struct {
	Name string
	Path string
	Main string
}

// Project is the fully resolved build configuration for one run.
type Project struct {
	// Root is the source tree root; dist/ and all phase commands resolve
	// relative to it.
	Root string

	Flavors []BuildFlavor
	Targets []LanguageTarget
	Styles  []StyleBundle

	// Locales is the default locale list compiled into UI-bearing bundles.
	Locales []string

	// Compiler is the command prefix for one library compile invocation.
	Compiler []string

	// Phases maps a collaborator phase name to its command prefix.
	Phases map[string][]string
}

// PhaseCommand returns the command prefix for a collaborator phase.
func (p *Project) PhaseCommand(name string) []string {
	return p.Phases[name]
}
