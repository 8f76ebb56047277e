package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/radieske/bancas-dashboard/internal/shared/kafka"
	"github.com/radieske/bancas-dashboard/pkg/contracts/events"
)

// Publisher publica as interações do dashboard
type Publisher interface {
	PublishSelectionChanged(ctx context.Context, e events.SelectionChanged) error
}

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: w}
}

// PublishSelectionChanged usa a sessão como chave para manter a ordem por sessão
func (p *KafkaPublisher) PublishSelectionChanged(ctx context.Context, e events.SelectionChanged) error {
	if e.Ts.IsZero() {
		e.Ts = time.Now().UTC()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return kafka.WriteJSON(ctx, p.Writer, e.SessionID, b)
}

// NoopPublisher é usado quando KAFKA_BROKERS não está configurado
type NoopPublisher struct{}

func (NoopPublisher) PublishSelectionChanged(context.Context, events.SelectionChanged) error {
	return nil
}
