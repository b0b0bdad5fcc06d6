// Package plan expands the declared build flavors into a flat task batch.
package plan

import (
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.fanout.dev/fanout/internal/core/domain"
)

// Expand produces the full cross product of flavors and language targets
// for one mode: exactly len(flavors) × len(targets) descriptors, in a
// deterministic order (targets outer, flavors inner).
//
// Each descriptor's argument vector is the compiler command, the task's
// --name, the flavor's selector tokens verbatim, the language target
// flag, the mode flag and finally any global flags. The base environment
// is copied per task.
//
// Expand is total: empty inputs yield an empty plan, never an error.
// Whether an empty plan is acceptable is the caller's decision.
func Expand(
	compiler []string,
	flavors []domain.BuildFlavor,
	targets []domain.LanguageTarget,
	mode domain.Mode,
	globalFlags []string,
	baseEnv []string,
) []domain.TaskDescriptor {
	tasks := make([]domain.TaskDescriptor, 0, len(flavors)*len(targets))

	for _, target := range targets {
		for _, flavor := range flavors {
			name := identityName(flavor, target, len(targets))

			args := make([]string, 0,
				len(compiler)+2+len(flavor.Selectors)+4+len(globalFlags))
			args = append(args, compiler...)
			args = append(args, "--name", name)
			args = append(args, flavor.Selectors...)
			args = append(args, "--langout", target.LangOut)
			args = append(args, "--mode", string(mode))
			args = append(args, globalFlags...)

			tasks = append(tasks, domain.TaskDescriptor{
				Args: args,
				Env:  slices.Clone(baseEnv),
				Identity: domain.Identity{
					Name: name,
					Mode: string(mode),
				},
			})
		}
	}

	return tasks
}

// identityName applies the naming rule: with a single target there is
// nothing to disambiguate, so the display name is used verbatim. With
// multiple targets, non-baseline suffixes are appended; the baseline's
// empty suffix appends nothing, and uniqueness holds because suffixes
// are unique within a target set.
func identityName(flavor domain.BuildFlavor, target domain.LanguageTarget, targetCount int) string {
	if targetCount > 1 && target.Suffix != "" {
		return flavor.Name + "-" + target.Suffix
	}
	return flavor.Name
}

// Digest returns a stable fingerprint of the batch's argument vectors in
// submission order. Two runs over the same configuration produce the
// same digest, which makes plan drift visible in the logs.
func Digest(tasks []domain.TaskDescriptor) uint64 {
	h := xxhash.New()
	for _, task := range tasks {
		for _, arg := range task.Args {
			_, _ = h.WriteString(arg)
			_, _ = h.WriteString("\x00")
		}
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}
