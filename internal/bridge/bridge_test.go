package bridge_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/bridge"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/mocks"
)

const testVoter = "0x1111111111111111111111111111111111111111"

type bridgeEnv struct {
	ctrl      *gomock.Controller
	projector *mocks.MockProjector
	json      adapter.JSON
	bridge    bridge.Bridge
	handlerCh chan adapter.MessageHandler
}

func newBridgeEnv(t *testing.T, workers int) *bridgeEnv {
	t.Helper()
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	env := &bridgeEnv{
		ctrl:      ctrl,
		projector: mocks.NewMockProjector(ctrl),
		json:      adapter.NewJSON(),
		handlerCh: make(chan adapter.MessageHandler, 1),
	}

	nc := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(nc, js, nil)

	consumer := mocks.NewMockNatsConsumer(ctrl)
	js.EXPECT().CreateOrUpdateConsumer(gomock.Any(), "governance-events", gomock.Any()).Return(consumer, nil)
	consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "governance-projector"}, nil)

	consumeCtx := mocks.NewMockConsumeContext(ctrl)
	consumeCtx.EXPECT().Stop()
	consumer.EXPECT().Consume(gomock.Any()).
		DoAndReturn(func(h adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			env.handlerCh <- h
			return consumeCtx, nil
		})

	b, err := bridge.NewBridge(bridge.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "governance-events",
		ConsumerName:   "governance-projector",
		ConnectionName: "bridge-test",
		WorkerPoolSize: workers,
	}, natsJS, env.projector, env.json)
	require.NoError(t, err)
	env.bridge = b
	return env
}

// run starts the bridge and hands back the captured consume handler
func (e *bridgeEnv) run(t *testing.T, ctx context.Context) (adapter.MessageHandler, chan error) {
	t.Helper()
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.bridge.Run(ctx)
	}()

	select {
	case handler := <-e.handlerCh:
		return handler, errCh
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not start consuming")
		return nil, nil
	}
}

func proposalEvent(txHash string, eventType domain.EventType, blockNumber uint64) *domain.GovernanceEvent {
	return &domain.GovernanceEvent{
		Chain:     domain.ChainEthereumSepolia,
		Contract:  "0x9999999999999999999999999999999999999999",
		EventType: eventType,
		Position:  domain.Position{BlockNumber: blockNumber},
		TxHash:    txHash,
		Actor:     testVoter,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Proposal:  &domain.ProposalPayload{ProposalID: 7},
	}
}

func (e *bridgeEnv) eventMsg(t *testing.T, event *domain.GovernanceEvent) *mocks.MockJetStreamMessage {
	t.Helper()
	payload, err := e.json.Marshal(event)
	require.NoError(t, err)

	msg := mocks.NewMockJetStreamMessage(e.ctrl)
	msg.EXPECT().Data().Return(payload).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

func TestSameEntityEventsApplyInStreamOrder(t *testing.T) {
	env := newBridgeEnv(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := []*domain.GovernanceEvent{
		proposalEvent("0x1", domain.EventTypeProposalCreated, 1),
		proposalEvent("0x2", domain.EventTypeProposalQueued, 2),
		proposalEvent("0x3", domain.EventTypeProposalExecuted, 3),
	}

	var mu sync.Mutex
	var applied []string
	env.projector.EXPECT().Apply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *domain.GovernanceEvent) error {
			mu.Lock()
			applied = append(applied, ev.TxHash)
			mu.Unlock()
			return nil
		}).Times(3)

	acks := make(chan struct{}, 3)
	handler, errCh := env.run(t, ctx)
	for _, ev := range events {
		msg := env.eventMsg(t, ev)
		msg.EXPECT().Ack().DoAndReturn(func() error {
			acks <- struct{}{}
			return nil
		})
		handler(msg)
	}

	for i := 0; i < 3; i++ {
		select {
		case <-acks:
		case <-time.After(2 * time.Second):
			t.Fatal("message was not acknowledged")
		}
	}

	// All three events share the proposal's lane, so the apply order is
	// the stream order even with four workers available
	mu.Lock()
	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, applied)
	mu.Unlock()

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not shut down")
	}
}

func TestPoisonMessageIsTerminated(t *testing.T) {
	env := newBridgeEnv(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, errCh := env.run(t, ctx)

	terms := make(chan struct{}, 1)
	poison := mocks.NewMockJetStreamMessage(env.ctrl)
	poison.EXPECT().Data().Return([]byte("not json")).AnyTimes()
	poison.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	poison.EXPECT().Term().DoAndReturn(func() error {
		terms <- struct{}{}
		return nil
	})
	handler(poison)

	select {
	case <-terms:
	case <-time.After(2 * time.Second):
		t.Fatal("poison message was not terminated")
	}

	// The loop keeps consuming after a poison message
	acks := make(chan struct{}, 1)
	env.projector.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
	msg := env.eventMsg(t, proposalEvent("0x4", domain.EventTypeProposalCreated, 4))
	msg.EXPECT().Ack().DoAndReturn(func() error {
		acks <- struct{}{}
		return nil
	})
	handler(msg)

	select {
	case <-acks:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not acknowledged")
	}

	cancel()
	<-errCh
}

func TestApplyFailureNaksForRedelivery(t *testing.T) {
	env := newBridgeEnv(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, errCh := env.run(t, ctx)

	naks := make(chan struct{}, 1)
	env.projector.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(assert.AnError)
	msg := env.eventMsg(t, proposalEvent("0x5", domain.EventTypeProposalCreated, 5))
	msg.EXPECT().Nak().DoAndReturn(func() error {
		naks <- struct{}{}
		return nil
	})
	handler(msg)

	select {
	case <-naks:
	case <-time.After(2 * time.Second):
		t.Fatal("failed message was not NAKed")
	}

	cancel()
	<-errCh
}
