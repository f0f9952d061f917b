package commands_test

import (
	"context"
	"testing"

	"go.trai.ch/taskgraph/cmd/taskgraph/commands"
	"go.trai.ch/taskgraph/internal/adapters/telemetry"
	"go.trai.ch/taskgraph/internal/app"
	"go.trai.ch/taskgraph/internal/core/domain"
	"go.trai.ch/taskgraph/internal/core/ports/mocks"
	"go.trai.ch/taskgraph/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, loader *mocks.MockConfigLoader) (*app.App, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	sched := scheduler.NewScheduler(telemetry.NewNoOpTelemetry())
	return app.New(loader, sched, logger), logger
}

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	build := domain.NewAction("build", domain.Seq(), domain.Map(nil), nil, func(context.Context, []any, map[string]any) (any, error) {
		return "ok", nil
	})
	loader.EXPECT().Load(".").Return([]domain.Task{build}, nil, nil)

	a, logger := newTestApp(t, loader)
	logger.EXPECT().Info(gomock.Any())

	cli := commands.New(a)
	cli.SetArgs([]string{"run", "build"})

	requireNoError(t, cli.Execute(context.Background()))
}

func TestRun_NoTargetsUsesFileDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	build := domain.NewAction("build", domain.Seq(), domain.Map(nil), nil, func(context.Context, []any, map[string]any) (any, error) {
		return "ok", nil
	})
	loader.EXPECT().Load(".").Return([]domain.Task{build}, []string{"build"}, nil)

	a, logger := newTestApp(t, loader)
	logger.EXPECT().Info(gomock.Any())

	cli := commands.New(a)
	cli.SetArgs([]string{"run"})

	requireNoError(t, cli.Execute(context.Background()))
}

func TestRun_TaskFailureReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)

	build := domain.NewAction("build", domain.Seq(), domain.Map(nil), nil, func(context.Context, []any, map[string]any) (any, error) {
		return nil, assertErr{}
	})
	loader.EXPECT().Load(".").Return([]domain.Task{build}, nil, nil)

	a, logger := newTestApp(t, loader)
	logger.EXPECT().Info(gomock.Any())
	logger.EXPECT().Error(gomock.Any())

	cli := commands.New(a)
	cli.SetArgs([]string{"run", "build"})

	err := cli.Execute(context.Background())
	if err == nil {
		t.Fatal("expected an error from a failed task")
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	a, _ := newTestApp(t, loader)

	cli := commands.New(a)
	cli.SetArgs([]string{"--help"})

	requireNoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	a, _ := newTestApp(t, loader)

	cli := commands.New(a)
	cli.SetArgs([]string{"version"})

	requireNoError(t, cli.Execute(context.Background()))
}

func requireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
