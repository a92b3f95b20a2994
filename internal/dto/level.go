package dto

import "github.com/GlebRadaev/refchain/internal/domain"

type LevelDTO struct {
	Name              string `json:"name" example:"silver"`
	RequiredReferrals int    `json:"required_referrals" example:"3"`
	BonusMultiplier   string `json:"bonus_multiplier" example:"1.10"`
}

func NewLevelDTO(l domain.Level) LevelDTO {
	return LevelDTO{
		Name:              string(l.Name),
		RequiredReferrals: l.RequiredReferrals,
		BonusMultiplier:   l.BonusMultiplier.StringFixed(domain.MoneyPlaces),
	}
}

type LevelProgressDTO struct {
	Tier            string    `json:"tier" example:"silver"`
	Multiplier      string    `json:"multiplier" example:"1.10"`
	DirectReferrals int       `json:"direct_referrals" example:"4"`
	Next            *LevelDTO `json:"next,omitempty"`
	Needed          int       `json:"needed" example:"6"`
}

func NewLevelProgressDTO(p *domain.LevelProgress) LevelProgressDTO {
	out := LevelProgressDTO{
		Tier:            string(p.Tier),
		Multiplier:      p.Multiplier.StringFixed(domain.MoneyPlaces),
		DirectReferrals: p.DirectReferrals,
		Needed:          p.Needed,
	}
	if p.Next != nil {
		next := NewLevelDTO(*p.Next)
		out.Next = &next
	}
	return out
}
