package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type AmountRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"250.00"`
}

type TransactionDTO struct {
	ID              int        `json:"id" example:"42"`
	Type            string     `json:"type" example:"bonus"`
	Amount          string     `json:"amount" example:"1000.00"`
	Currency        string     `json:"currency" example:"vcoins"`
	Status          string     `json:"status" example:"confirmed"`
	Description     string     `json:"description" example:"Referral bonus from bob (Level 1)"`
	RelatedMemberID *int       `json:"related_member_id,omitempty" example:"7"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-05-01T10:00:00Z"`
	ConfirmedAt     *time.Time `json:"confirmed_at,omitempty" example:"2024-05-01T10:00:00Z"`
}

func NewTransactionDTO(t *domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:              t.ID,
		Type:            string(t.Type),
		Amount:          t.Amount.StringFixed(domain.MoneyPlaces),
		Currency:        string(t.Currency),
		Status:          string(t.Status),
		Description:     t.Description,
		RelatedMemberID: t.RelatedMemberID,
		CreatedAt:       t.CreatedAt,
		ConfirmedAt:     t.ConfirmedAt,
	}
}

func NewTransactionDTOs(txs []domain.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionDTO(&txs[i]))
	}
	return out
}

type BalanceResponseDTO struct {
	Vcoins   string `json:"vcoins" example:"1250.00"`
	Rubles   string `json:"rubles" example:"0.00"`
	Currency string `json:"currency" example:"vcoins"`
	Main     string `json:"main" example:"1250.00"`
}

func NewBalanceDTO(m *domain.Member) BalanceResponseDTO {
	return BalanceResponseDTO{
		Vcoins:   m.BalanceVcoins.StringFixed(domain.MoneyPlaces),
		Rubles:   m.BalanceRubles.StringFixed(domain.MoneyPlaces),
		Currency: string(m.Type.Currency()),
		Main:     m.MainBalance().StringFixed(domain.MoneyPlaces),
	}
}

type BonusDTO struct {
	TransactionDTO
	Level int `json:"level" example:"1"`
}

func NewBonusDTOs(entries []domain.BonusEntry) []BonusDTO {
	out := make([]BonusDTO, 0, len(entries))
	for i := range entries {
		out = append(out, BonusDTO{
			TransactionDTO: NewTransactionDTO(&entries[i].Transaction),
			Level:          entries[i].Level,
		})
	}
	return out
}
