package plan_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/engine/plan"
)

var (
	testCompiler = []string{"python3", "build/build.py"}

	testFlavors = []domain.BuildFlavor{
		{Name: "A", Selectors: []string{"+@complete"}},
		{Name: "B", Selectors: []string{"-@ui"}},
	}

	testTargets = []domain.LanguageTarget{
		{LangOut: "ECMASCRIPT5", Suffix: ""},
		{LangOut: "ECMASCRIPT_2021", Suffix: "es2021"},
	}
)

func TestExpand_CrossProduct(t *testing.T) {
	tasks := plan.Expand(testCompiler, testFlavors, testTargets, domain.ModeDebug, nil, nil)
	require.Len(t, tasks, 4)

	var names []string
	seen := map[domain.Identity]bool{}
	for _, task := range tasks {
		names = append(names, task.Identity.Name)
		assert.False(t, seen[task.Identity], "duplicate identity %s", task.Identity)
		seen[task.Identity] = true
		assert.Equal(t, "debug", task.Identity.Mode)
	}

	// Targets outer, flavors inner; baseline names carry no suffix.
	assert.Equal(t, []string{"A", "B", "A-es2021", "B-es2021"}, names)
}

func TestExpand_ArgumentVector(t *testing.T) {
	tasks := plan.Expand(testCompiler, testFlavors, testTargets, domain.ModeRelease, []string{"--force"}, nil)
	require.Len(t, tasks, 4)

	assert.Equal(t, []string{
		"python3", "build/build.py",
		"--name", "A",
		"+@complete",
		"--langout", "ECMASCRIPT5",
		"--mode", "release",
		"--force",
	}, tasks[0].Args)

	assert.Equal(t, []string{
		"python3", "build/build.py",
		"--name", "B-es2021",
		"-@ui",
		"--langout", "ECMASCRIPT_2021",
		"--mode", "release",
		"--force",
	}, tasks[3].Args)
}

func TestExpand_SingleTargetKeepsPlainNames(t *testing.T) {
	tasks := plan.Expand(testCompiler, testFlavors, testTargets[:1], domain.ModeDebug, nil, nil)
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0].Identity.Name)
	assert.Equal(t, "B", tasks[1].Identity.Name)
}

func TestExpand_EnvIsolation(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/build"}
	tasks := plan.Expand(testCompiler, testFlavors, testTargets[:1], domain.ModeDebug, nil, base)
	require.Len(t, tasks, 2)

	// Mutating one task's environment must not leak into a sibling or
	// into the base snapshot.
	tasks[0].Env[0] = "PATH=/sabotaged"
	assert.Equal(t, "PATH=/usr/bin", tasks[1].Env[0])
	assert.Equal(t, "PATH=/usr/bin", base[0])
}

func TestExpand_EmptyInputs(t *testing.T) {
	assert.Empty(t, plan.Expand(testCompiler, nil, testTargets, domain.ModeDebug, nil, nil))
	assert.Empty(t, plan.Expand(testCompiler, testFlavors, nil, domain.ModeDebug, nil, nil))
}

func TestDigest_Deterministic(t *testing.T) {
	a := plan.Expand(testCompiler, testFlavors, testTargets, domain.ModeDebug, nil, nil)
	b := plan.Expand(testCompiler, testFlavors, testTargets, domain.ModeDebug, nil, nil)
	assert.Equal(t, plan.Digest(a), plan.Digest(b))

	c := plan.Expand(testCompiler, testFlavors, testTargets, domain.ModeRelease, nil, nil)
	assert.NotEqual(t, plan.Digest(a), plan.Digest(c))
}

func TestExpand_Golden(t *testing.T) {
	tasks := plan.Expand(testCompiler, testFlavors, testTargets, domain.ModeDebug, []string{"--force"}, nil)

	var sb strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&sb, "%s\t%s\n", task.Identity, strings.Join(task.Args, " "))
	}

	g := goldie.New(t)
	g.Assert(t, "expanded_plan", []byte(sb.String()))
}
