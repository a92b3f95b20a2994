package dto

import (
	"time"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type RegisterRequestDTO struct {
	Username     string `json:"username" example:"alice"`
	Password     string `json:"password" example:"s3cret-pass"`
	MemberType   string `json:"member_type" example:"player" enums:"player,influencer"`
	ReferralCode string `json:"referral_code,omitempty" example:"K3M9QX2A"`
}

type LoginRequestDTO struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cret-pass"`
}

type TokenResponseDTO struct {
	Token  string    `json:"token"`
	Member MemberDTO `json:"member"`
}

type ReferralLinkDTO struct {
	ReferralCode string `json:"referral_code" example:"K3M9QX2A"`
	ReferralLink string `json:"referral_link" example:"https://refchain.example/register?ref=K3M9QX2A"`
}

type MemberDTO struct {
	ID                    int       `json:"id" example:"1"`
	Username              string    `json:"username" example:"alice"`
	MemberType            string    `json:"member_type" example:"player"`
	ReferralCode          string    `json:"referral_code" example:"K3M9QX2A"`
	BalanceVcoins         string    `json:"balance_vcoins" example:"1000.00"`
	BalanceRubles         string    `json:"balance_rubles" example:"0.00"`
	Tier                  string    `json:"tier" example:"none"`
	IsAdmin               bool      `json:"is_admin"`
	FirstTournamentPlayed bool      `json:"first_tournament_played"`
	CreatedAt             time.Time `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

func NewMemberDTO(m *domain.Member) MemberDTO {
	return MemberDTO{
		ID:                    m.ID,
		Username:              m.Username,
		MemberType:            string(m.Type),
		ReferralCode:          m.ReferralCode,
		BalanceVcoins:         m.BalanceVcoins.StringFixed(domain.MoneyPlaces),
		BalanceRubles:         m.BalanceRubles.StringFixed(domain.MoneyPlaces),
		Tier:                  string(m.Tier),
		IsAdmin:               m.IsAdmin,
		FirstTournamentPlayed: m.FirstTournamentPlayed,
		CreatedAt:             m.CreatedAt,
	}
}
