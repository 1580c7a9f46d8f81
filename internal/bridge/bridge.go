package bridge

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/audit"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/projection"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int

	// WorkerPoolSize bounds concurrent projection applies
	WorkerPoolSize int
	// WorkerQueueSize bounds the backlog before Consume blocks
	WorkerQueueSize int
}

const (
	defaultWorkerPoolSize  = 8
	defaultWorkerQueueSize = 256
)

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run starts the event bridge
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

// bridge consumes governance events from JetStream and applies them to the
// read model. Delivery is at-least-once; the projection absorbs duplicates,
// so the bridge only decides between Ack, Nak (retry) and Term (poison).
// Events are fanned out over per-entity lanes: all events touching the
// same proposal, citizen or withdrawal land on the same worker in stream
// order, so a status update can never overtake an earlier one.
type bridge struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	projector projection.Projector
	json      adapter.JSON
	config    Config
	pool      pond.Pool
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	projector projection.Projector,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	b := &bridge{
		nc:        nc,
		js:        js,
		projector: projector,
		json:      jsonAdapter,
		config:    cfg,
	}

	return b, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	// Subscribe to all governance event subjects
	subject := "governance.*.>"

	// Create or get consumer
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: subject,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	workerPoolSize := b.config.WorkerPoolSize
	if workerPoolSize == 0 {
		workerPoolSize = defaultWorkerPoolSize
	}
	workerQueueSize := b.config.WorkerQueueSize
	if workerQueueSize == 0 {
		workerQueueSize = defaultWorkerQueueSize
	}

	b.pool = pond.NewPool(
		workerPoolSize,
		pond.WithContext(ctx),
	)
	defer b.pool.StopAndWait()

	// One FIFO lane per worker. Each lane is drained by a dedicated pool
	// task, so events sharing an entity key apply strictly in stream order.
	lanes := make([]chan inflightEvent, workerPoolSize)
	for i := range lanes {
		lane := make(chan inflightEvent, workerQueueSize)
		lanes[i] = lane
		b.pool.Submit(func() {
			for in := range lane {
				b.applyEvent(ctx, in.msg, in.event)
			}
		})
	}

	logger.Info("Bridge worker pool created",
		zap.Int("workers", workerPoolSize),
		zap.Int("queue_size", workerQueueSize))

	// Create subscription
	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	// Decode on the dispatch path so the lane can be chosen by entity key
	for {
		select {
		case <-ctx.Done():
			for _, lane := range lanes {
				close(lane)
			}
			logger.Info("Shutting down event bridge",
				zap.Uint64("submitted", b.pool.SubmittedTasks()),
				zap.Uint64("failed", b.pool.FailedTasks()))
			return ctx.Err()
		case msg := <-msgChan:
			event, ok := b.decodeEvent(msg)
			if !ok {
				continue
			}
			lanes[laneIndex(audit.Subject(event), len(lanes))] <- inflightEvent{msg: msg, event: event}
		}
	}
}

// inflightEvent pairs a decoded event with the message it rode in on
type inflightEvent struct {
	msg   adapter.Message
	event *domain.GovernanceEvent
}

// laneIndex hashes an entity key onto a lane
func laneIndex(key string, lanes int) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(lanes))
}

// decodeEvent parses and validates a message. Poison messages are
// terminated here: unparseable or malformed data never becomes valid
// on redelivery.
func (b *bridge) decodeEvent(msg adapter.Message) (*domain.GovernanceEvent, bool) {
	metadata, _ := msg.Metadata()

	var event domain.GovernanceEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return nil, false
	}

	deliveryCount := uint64(0)
	if metadata != nil {
		deliveryCount = metadata.NumDelivered
	}
	logger.Info("Received event",
		zap.String("chain", string(event.Chain)),
		zap.String("eventType", string(event.EventType)),
		zap.String("eventID", event.EventID()),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	if !event.Valid() {
		logger.Error(domain.ErrInvalidGovernanceEvent,
			zap.String("eventType", string(event.EventType)),
			zap.String("eventID", event.EventID()))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return nil, false
	}

	return &event, true
}

// applyEvent applies one event to the read model and settles the message
func (b *bridge) applyEvent(ctx context.Context, msg adapter.Message, event *domain.GovernanceEvent) {
	if err := b.projector.Apply(ctx, event); err != nil {
		logger.Error(err, zap.String("message", "Failed to apply event"), zap.String("eventID", event.EventID()))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	// ACK message after successful processing
	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
