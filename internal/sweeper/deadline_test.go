package sweeper_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/mocks"
	"github.com/nexus-dao/nexus-governance/internal/store"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
	"github.com/nexus-dao/nexus-governance/internal/sweeper"
)

const testTaskQueue = "governance-pipeline"

type sweeperEnv struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	clock        *mocks.MockClock
	orchestrator *mocks.MockTemporalOrchestrator
	sweeper      sweeper.Sweeper
	now          time.Time
	sleepCh      chan time.Time
}

func newSweeperEnv(t *testing.T) *sweeperEnv {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	env := &sweeperEnv{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		clock:        mocks.NewMockClock(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
		now:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		sleepCh:      make(chan time.Time),
	}

	env.clock.EXPECT().Now().DoAndReturn(func() time.Time { return env.now }).AnyTimes()
	env.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()
	// Inter-cycle sleeps park on this channel until the test stops the sweeper
	env.clock.EXPECT().After(gomock.Any()).Return(env.sleepCh).AnyTimes()

	env.sweeper = sweeper.NewDeadlineSweeper(
		&sweeper.DeadlineSweeperConfig{BatchSize: 100, WorkerPoolSize: 2},
		env.store, env.clock, env.orchestrator, testTaskQueue,
	)
	return env
}

// run starts the sweeper in the background and returns its exit channel
func (env *sweeperEnv) run(ctx context.Context) chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- env.sweeper.Start(ctx)
	}()
	return errCh
}

func activeProposal(id uint64, endTime time.Time) schema.Proposal {
	return schema.Proposal{
		ProposalID: id,
		Status:     string(domain.ProposalStatusActive),
		EndTime:    endTime,
	}
}

func TestDeadlineSweeper_Name(t *testing.T) {
	env := newSweeperEnv(t)
	defer env.ctrl.Finish()
	assert.Equal(t, "proposal-deadline-sweeper", env.sweeper.Name())
}

func TestDeadlineSweeper_StartsFinalizationForEndedProposals(t *testing.T) {
	env := newSweeperEnv(t)
	defer env.ctrl.Finish()

	started := make(chan string, 2)

	// One proposal past its deadline, one still in its voting window
	env.store.EXPECT().
		GetProposalsByFilter(gomock.Any(), store.ProposalQueryFilter{
			Statuses: []string{string(domain.ProposalStatusActive)},
			Limit:    100,
		}).
		Return([]schema.Proposal{
			activeProposal(7, env.now.Add(-time.Minute)),
			activeProposal(8, env.now.Add(time.Hour)),
		}, uint64(2), nil)
	// Later cycles find nothing and park in the inter-cycle sleep
	env.store.EXPECT().
		GetProposalsByFilter(gomock.Any(), gomock.Any()).
		Return(nil, uint64(0), nil).
		AnyTimes()

	env.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), "FinalizeProposal", uint64(7)).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "finalize-proposal-7", options.ID)
			assert.Equal(t, testTaskQueue, options.TaskQueue)
			started <- options.ID
			return nil, nil
		})

	errCh := env.run(context.Background())

	select {
	case id := <-started:
		assert.Equal(t, "finalize-proposal-7", id)
	case <-time.After(5 * time.Second):
		t.Fatal("finalization workflow was not started")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, env.sweeper.Stop(stopCtx))
	assert.NoError(t, <-errCh)
}

func TestDeadlineSweeper_WorkflowStartErrorIsSkipped(t *testing.T) {
	env := newSweeperEnv(t)
	defer env.ctrl.Finish()

	attempted := make(chan struct{}, 1)

	env.store.EXPECT().
		GetProposalsByFilter(gomock.Any(), gomock.Any()).
		Return([]schema.Proposal{activeProposal(9, env.now.Add(-time.Minute))}, uint64(1), nil)
	env.store.EXPECT().
		GetProposalsByFilter(gomock.Any(), gomock.Any()).
		Return(nil, uint64(0), nil).
		AnyTimes()

	// Another actor already started the workflow: the sweep must absorb
	// the error and keep running
	env.orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), "FinalizeProposal", uint64(9)).
		DoAndReturn(func(_ context.Context, _ client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			attempted <- struct{}{}
			return nil, assert.AnError
		})

	errCh := env.run(context.Background())

	select {
	case <-attempted:
	case <-time.After(5 * time.Second):
		t.Fatal("workflow start was not attempted")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, env.sweeper.Stop(stopCtx))
	assert.NoError(t, <-errCh)
}

func TestDeadlineSweeper_ContextCancellationStopsLoop(t *testing.T) {
	env := newSweeperEnv(t)
	defer env.ctrl.Finish()

	fetched := make(chan struct{}, 1)
	env.store.EXPECT().
		GetProposalsByFilter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.ProposalQueryFilter) ([]schema.Proposal, uint64, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			return nil, 0, nil
		}).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := env.run(ctx)

	select {
	case <-fetched:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep cycle never ran")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}

func TestDeadlineSweeper_DoubleStartRejected(t *testing.T) {
	env := newSweeperEnv(t)
	defer env.ctrl.Finish()

	fetched := make(chan struct{}, 1)
	env.store.EXPECT().
		GetProposalsByFilter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ store.ProposalQueryFilter) ([]schema.Proposal, uint64, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			return nil, 0, nil
		}).
		AnyTimes()

	errCh := env.run(context.Background())

	// Once a cycle runs the background Start owns the loop
	select {
	case <-fetched:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep cycle never ran")
	}
	assert.Error(t, env.sweeper.Start(context.Background()))

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, env.sweeper.Stop(stopCtx))
	assert.NoError(t, <-errCh)
}
