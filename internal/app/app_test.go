package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"bootsplash/internal/app/cli"
	"bootsplash/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner records the shutdown request
type mockShutdowner struct {
	called chan struct{}
	opts   []fx.ShutdownOption
}

func newMockShutdowner() *mockShutdowner {
	return &mockShutdowner{called: make(chan struct{}, 1)}
}

func (m *mockShutdowner) Shutdown(opts ...fx.ShutdownOption) error {
	m.opts = opts
	m.called <- struct{}{}

	return nil
}

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()
	mockLog.EXPECT().Error().Return(nil).AnyTimes()

	return mockLog
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := newTestLogger(ctrl)

	application := NewApp(mockCLI, newMockShutdowner(), mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
}

func Test_execute(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	app := NewApp(mockCLI, newMockShutdowner(), newTestLogger(ctrl))

	tests := []struct {
		name         string
		before       func()
		expectedCode int
	}{
		{
			name: "Success",
			before: func() {
				mockCLI.EXPECT().Execute(gomock.Any()).Return(cli.ExitOK, nil)
			},
			expectedCode: cli.ExitOK,
		},
		{
			name: "Failure",
			before: func() {
				mockCLI.EXPECT().Execute(gomock.Any()).Return(cli.ExitError, errors.New("playback failed"))
			},
			expectedCode: cli.ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.before()
			assert.Equal(t, tt.expectedCode, app.execute(context.Background()))
		})
	}
}

func Test_App_Run(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	shutdowner := newMockShutdowner()
	app := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	mockCLI.EXPECT().Execute(gomock.Any()).Return(cli.ExitError, nil)

	app.Run(context.Background())

	select {
	case <-app.done:
	default:
		t.Fatal("done channel not closed")
	}

	assert.Len(t, shutdowner.opts, 1)
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCLI := cli.NewMockCLI(ctrl)
	shutdowner := newMockShutdowner()
	app := NewApp(mockCLI, shutdowner, newTestLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	require.NotNil(t, capturedHook.OnStart)
	require.NotNil(t, capturedHook.OnStop)

	// The CLI blocks until its context is canceled by OnStop
	mockCLI.EXPECT().Execute(gomock.Any()).DoAndReturn(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return cli.ExitOK, nil
	})

	require.NoError(t, capturedHook.OnStart(context.Background()))
	require.NoError(t, capturedHook.OnStop(context.Background()))

	select {
	case <-shutdowner.called:
	case <-time.After(time.Second):
		t.Fatal("shutdown not requested")
	}
}

func Test_Register_OnStopTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)

	app := NewApp(cli.NewMockCLI(ctrl), newMockShutdowner(), newTestLogger(ctrl))

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, capturedHook.OnStop(ctx), context.Canceled)
}
