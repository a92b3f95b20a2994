package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type Kind string

const KindBonusCredited Kind = "bonus.credited"

// Event is published after the atomic scope that produced it has committed.
type Event struct {
	ID              string          `json:"id"`
	Kind            Kind            `json:"kind"`
	MemberID        int             `json:"member_id"`
	TransactionID   int             `json:"transaction_id"`
	RelatedMemberID *int            `json:"related_member_id,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

func BonusCredited(tx *domain.Transaction) Event {
	return Event{
		ID:              uuid.NewString(),
		Kind:            KindBonusCredited,
		MemberID:        tx.MemberID,
		TransactionID:   tx.ID,
		RelatedMemberID: tx.RelatedMemberID,
		Amount:          tx.Amount,
		Currency:        string(tx.Currency),
		Description:     tx.Description,
		OccurredAt:      time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
