// Package config loads the project configuration for a build run.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.fanout.dev/fanout/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project configuration file.
const FileName = "fanout.yaml"

// Loader implements ports.ConfigLoader against the filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load resolves the project configuration for cwd: built-in defaults,
// overridden by a fanout.yaml found at the discovered root.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	project := defaultProject(root)

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path) // #nosec G304 -- path derived from discovered root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return project, validate(project)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	merge(project, &file)
	return project, validate(project)
}

// DiscoverRoot walks up from cwd looking for a fanout.yaml. When none
// exists anywhere above cwd, cwd itself is the root and the built-in
// defaults apply.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for probe := dir; ; {
		if _, err := os.Stat(filepath.Join(probe, FileName)); err == nil {
			return probe, nil
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			return dir, nil
		}
		probe = parent
	}
}

func merge(project *domain.Project, file *File) {
	if len(file.Compiler) > 0 {
		project.Compiler = file.Compiler
	}
	for name, cmd := range file.Phases {
		project.Phases[name] = cmd
	}
	if len(file.Locales) > 0 {
		project.Locales = file.Locales
	}
	if len(file.Flavors) > 0 {
		project.Flavors = make([]domain.BuildFlavor, len(file.Flavors))
		for i, f := range file.Flavors {
			project.Flavors[i] = domain.BuildFlavor{
				Name:      f.Name,
				Selectors: f.Selectors,
				HasUI:     f.UI,
			}
		}
	}
	if len(file.Targets) > 0 {
		project.Targets = make([]domain.LanguageTarget, len(file.Targets))
		for i, t := range file.Targets {
			project.Targets[i] = domain.LanguageTarget{
				LangOut: t.LangOut,
				Suffix:  t.Suffix,
			}
		}
	}
	if len(file.Styles) > 0 {
		project.Styles = make([]domain.StyleBundle, len(file.Styles))
		for i, s := range file.Styles {
			project.Styles[i] = domain.StyleBundle{
				Name: s.Name,
				Path: s.Path,
				Main: s.Main,
			}
		}
	}
}

func validate(project *domain.Project) error {
	if len(project.Compiler) == 0 {
		return domain.ErrMissingCompilerCommand
	}

	names := make(map[string]bool, len(project.Flavors))
	for _, flavor := range project.Flavors {
		if flavor.Name == "" {
			return domain.ErrMissingFlavorName
		}
		if names[flavor.Name] {
			return zerr.With(domain.ErrDuplicateFlavorName, "flavor", flavor.Name)
		}
		names[flavor.Name] = true
	}

	suffixes := make(map[string]bool, len(project.Targets))
	for i, target := range project.Targets {
		if i == 0 && target.Suffix != "" {
			return domain.ErrBaselineNotFirst
		}
		if suffixes[target.Suffix] {
			return zerr.With(domain.ErrDuplicateTargetSuffix, "suffix", target.Suffix)
		}
		suffixes[target.Suffix] = true
	}

	for _, phase := range []string{"localizations", "deps", "check", "docs", "styles", "apps"} {
		if len(project.Phases[phase]) == 0 {
			return zerr.With(domain.ErrMissingPhaseCommand, "phase", phase)
		}
	}

	return nil
}
