package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.fanout.dev/fanout/internal/app"
	"go.fanout.dev/fanout/internal/core/domain"
	"go.fanout.dev/fanout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func provider(components *app.Components, err error) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, err
	}
}

func TestRun_ProviderFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), nil, &stderr, provider(nil, errors.New("wiring exploded")))

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: wiring exploded")
}

func TestRun_BuildFailureExitsQuietly(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	// The sequencer already reported; the entry point must not log again.
	loader.EXPECT().Load(".").Return(nil, domain.ErrBuildExecutionFailed)
	logger.EXPECT().Error(gomock.Any()).Times(0)

	components := testComponents(t, ctrl, logger, loader)

	var stderr bytes.Buffer
	code := run(context.Background(), nil, &stderr, provider(components, nil))
	assert.Equal(t, 1, code)
}

func TestRun_UnexpectedErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	loadErr := errors.New("config on fire")
	loader.EXPECT().Load(".").Return(nil, loadErr)
	logger.EXPECT().Error(gomock.Any()).Times(1)

	components := testComponents(t, ctrl, logger, loader)

	var stderr bytes.Buffer
	code := run(context.Background(), nil, &stderr, provider(components, nil))
	assert.Equal(t, 1, code)
}

func TestRun_VersionSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	loader := mocks.NewMockConfigLoader(ctrl)

	components := testComponents(t, ctrl, logger, loader)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stderr, provider(components, nil))
	assert.Equal(t, 0, code)
}

// testComponents assembles a Components whose App fails or succeeds
// according to the loader mock; the rest of the graph is never reached.
func testComponents(
	t *testing.T,
	ctrl *gomock.Controller,
	logger *mocks.MockLogger,
	loader *mocks.MockConfigLoader,
) *app.Components {
	t.Helper()

	collab := mocks.NewMockCollaborators(ctrl)
	pool := mocks.NewMockPool(ctrl)
	env := mocks.NewMockEnvSource(ctrl)
	tracer := mocks.NewMockTracer(ctrl)

	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	return &app.Components{
		App:    app.New(loader, collab, pool, env, logger, tracer),
		Logger: logger,
		Tracer: tracer,
	}
}
