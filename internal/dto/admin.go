package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type ConfirmDepositRequestDTO struct {
	TransactionID int `json:"transaction_id" example:"42"`
}

type ConfirmDepositResponseDTO struct {
	Deposit TransactionDTO  `json:"deposit"`
	Balance string          `json:"balance" example:"250.00"`
	Bonus   *TransactionDTO `json:"bonus,omitempty"`
}

type ConfirmTournamentRequestDTO struct {
	MemberID       int             `json:"member_id" example:"7"`
	TournamentName string          `json:"tournament_name" example:"Spring Cup"`
	Reward         decimal.Decimal `json:"reward" swaggertype:"string" example:"0"`
}

type ConfirmTournamentResponseDTO struct {
	Member          MemberDTO        `json:"member"`
	Reward          *TransactionDTO  `json:"reward,omitempty"`
	FirstTournament bool             `json:"first_tournament"`
	Bonuses         []TransactionDTO `json:"bonuses"`
}

type ManualBonusRequestDTO struct {
	MemberID int             `json:"member_id" example:"7"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Reason   string          `json:"reason" example:"Compensation"`
}

type CompleteTransactionResponseDTO struct {
	Applied bool      `json:"applied"`
	Member  MemberDTO `json:"member"`
}

type StatsDTO struct {
	TotalMembers      int    `json:"total_members" example:"120"`
	TotalPlayers      int    `json:"total_players" example:"100"`
	TotalInfluencers  int    `json:"total_influencers" example:"20"`
	TotalTransactions int    `json:"total_transactions" example:"800"`
	DepositsVcoins    string `json:"total_deposits_vcoins" example:"15000.00"`
	DepositsRubles    string `json:"total_deposits_rubles" example:"0.00"`
	BonusesVcoins     string `json:"total_bonuses_paid_vcoins" example:"42000.00"`
	BonusesRubles     string `json:"total_bonuses_paid_rubles" example:"310.50"`
	PendingDeposits   int    `json:"pending_deposits" example:"3"`
	ActiveLast30Days  int    `json:"active_last_30_days" example:"40"`
}

func NewStatsDTO(s *domain.SystemStats) StatsDTO {
	return StatsDTO{
		TotalMembers:      s.TotalMembers,
		TotalPlayers:      s.TotalPlayers,
		TotalInfluencers:  s.TotalInfluencers,
		TotalTransactions: s.TotalTransactions,
		DepositsVcoins:    s.TotalDeposits.Vcoins.StringFixed(domain.MoneyPlaces),
		DepositsRubles:    s.TotalDeposits.Rubles.StringFixed(domain.MoneyPlaces),
		BonusesVcoins:     s.TotalBonusesPaid.Vcoins.StringFixed(domain.MoneyPlaces),
		BonusesRubles:     s.TotalBonusesPaid.Rubles.StringFixed(domain.MoneyPlaces),
		PendingDeposits:   s.PendingDeposits,
		ActiveLast30Days:  s.ActiveLast30Days,
	}
}
