package config

import "go.fanout.dev/fanout/internal/core/domain"

// completeNonExperimental is the selector base shared by every stable flavor.
var completeNonExperimental = []string{"+@complete", "-@msf"}

// defaultProject returns the built-in configuration. The flavor set and
// selector tokens mirror the library's long-standing build matrix; a
// fanout.yaml can override any part of it.
func defaultProject(root string) *domain.Project {
	return &domain.Project{
		Root: root,
		Flavors: []domain.BuildFlavor{
			{
				Name:      "experimental",
				Selectors: []string{"+@complete"},
				HasUI:     true,
			},
			{
				Name:      "ui",
				Selectors: completeNonExperimental,
				HasUI:     true,
			},
			{
				Name: "compiled",
				Selectors: append(append([]string{}, completeNonExperimental...),
					"-@ui", "-@polyfillForUI"),
			},
			{
				Name: "dash",
				Selectors: append(append([]string{}, completeNonExperimental...),
					"-@ui", "-@polyfillForUI", "-@queue", "-@hls", "-@transmuxer",
					"-@offline", "-@cast", "-@optionalText", "-@ads"),
			},
			{
				Name: "hls",
				Selectors: append(append([]string{}, completeNonExperimental...),
					"-@ui", "-@polyfillForUI", "-@queue", "-@dash",
					"-@offline", "-@cast", "-@optionalText", "-@ads"),
			},
		},
		Targets: []domain.LanguageTarget{
			{LangOut: "ECMASCRIPT5", Suffix: ""},
			{LangOut: "ECMASCRIPT_2021", Suffix: "es2021"},
		},
		Styles: []domain.StyleBundle{
			{Name: "ui", Path: "ui", Main: "controls"},
			{Name: "demo", Path: "demo", Main: "demo"},
		},
		Locales:  []string{"en"},
		Compiler: []string{"python3", "build/build.py"},
		Phases: map[string][]string{
			"localizations": {"python3", "build/generateLocalizations.py"},
			"deps":          {"python3", "build/gendeps.py"},
			"check":         {"python3", "build/check.py"},
			"docs":          {"python3", "build/docs.py"},
			"styles":        {"python3", "build/less.py"},
			"apps":          {"python3", "build/apps.py"},
		},
	}
}
