package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.fanout.dev/fanout/internal/core/domain"
)

func TestIdentity_Prefix(t *testing.T) {
	tests := []struct {
		name string
		id   domain.Identity
		want string
	}{
		{
			name: "baseline flavor",
			id:   domain.Identity{Name: "compiled", Mode: "debug"},
			want: "[build:compiled-debug]",
		},
		{
			name: "suffixed flavor",
			id:   domain.Identity{Name: "compiled-es2021", Mode: "release"},
			want: "[build:compiled-es2021-release]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.Prefix())
		})
	}
}

func TestTaskOutcome_Failed(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.TaskOutcome
		want    bool
	}{
		{"clean exit", domain.TaskOutcome{ExitCode: 0}, false},
		{"non-zero exit", domain.TaskOutcome{ExitCode: 2}, true},
		{"spawn failure", domain.TaskOutcome{ExitCode: -1, Err: errors.New("no such file")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.Failed())
		})
	}
}

func TestBatchResult(t *testing.T) {
	ok := domain.TaskOutcome{Identity: domain.Identity{Name: "ui", Mode: "debug"}}
	failA := domain.TaskOutcome{Identity: domain.Identity{Name: "dash", Mode: "debug"}, ExitCode: 1}
	failB := domain.TaskOutcome{Identity: domain.Identity{Name: "hls", Mode: "debug"}, ExitCode: 3}

	t.Run("all succeeded", func(t *testing.T) {
		batch := domain.BatchResult{ok, ok}
		assert.True(t, batch.OK())
		_, failed := batch.FirstFailure()
		assert.False(t, failed)
		assert.Empty(t, batch.FailedIdentities())
	})

	t.Run("first failure by submission order", func(t *testing.T) {
		batch := domain.BatchResult{ok, failA, failB}
		assert.False(t, batch.OK())
		i, failed := batch.FirstFailure()
		assert.True(t, failed)
		assert.Equal(t, 1, i)
		assert.Equal(t, []string{"dash-debug", "hls-debug"}, batch.FailedIdentities())
	})
}
