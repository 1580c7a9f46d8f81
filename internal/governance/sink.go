package governance

import (
	"context"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/messaging"
)

// publisherSink forwards the ledger's event log to the message broker so
// the bridge can project it into the read model.
type publisherSink struct {
	publisher messaging.Publisher
}

// NewPublisherSink wraps a publisher as an EventSink
func NewPublisherSink(publisher messaging.Publisher) EventSink {
	return &publisherSink{publisher: publisher}
}

func (s *publisherSink) Append(ctx context.Context, event *domain.GovernanceEvent) error {
	return s.publisher.PublishEvent(ctx, event)
}
