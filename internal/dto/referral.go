package dto

import (
	"time"

	"github.com/GlebRadaev/refchain/internal/domain"
)

type ReferralDTO struct {
	MemberID    int       `json:"member_id" example:"7"`
	Username    string    `json:"username" example:"bob"`
	MemberType  string    `json:"member_type" example:"player"`
	Level       int       `json:"level" example:"1"`
	TotalEarned string    `json:"total_earned_from" example:"1000.00"`
	JoinedAt    time.Time `json:"joined_at" example:"2024-05-01T10:00:00Z"`
}

func NewReferralDTOs(summaries []domain.ReferralSummary) []ReferralDTO {
	out := make([]ReferralDTO, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ReferralDTO{
			MemberID:    s.Relation.ReferredID,
			Username:    s.Username,
			MemberType:  string(s.Type),
			Level:       s.Relation.Level,
			TotalEarned: s.TotalEarned.StringFixed(domain.MoneyPlaces),
			JoinedAt:    s.ReferredJoined,
		})
	}
	return out
}

type LevelBreakdownDTO struct {
	Level  int    `json:"level" example:"1"`
	Count  int    `json:"count" example:"3"`
	Earned string `json:"earned" example:"3000.00"`
}

type ReferralStatsDTO struct {
	TotalReferrals  int                 `json:"total_referrals" example:"12"`
	DirectReferrals int                 `json:"direct_referrals" example:"3"`
	TotalEarned     string              `json:"total_earned" example:"3450.00"`
	Levels          []LevelBreakdownDTO `json:"levels"`
}

func NewReferralStatsDTO(s *domain.ReferralStats) ReferralStatsDTO {
	levels := make([]LevelBreakdownDTO, 0, len(s.Levels))
	for _, l := range s.Levels {
		levels = append(levels, LevelBreakdownDTO{Level: l.Level, Count: l.Count, Earned: l.Earned.StringFixed(domain.MoneyPlaces)})
	}
	return ReferralStatsDTO{
		TotalReferrals:  s.TotalReferrals,
		DirectReferrals: s.DirectReferrals,
		TotalEarned:     s.TotalEarned.StringFixed(domain.MoneyPlaces),
		Levels:          levels,
	}
}

type TreeNodeDTO struct {
	MemberID   int            `json:"member_id" example:"1"`
	Username   string         `json:"username" example:"alice"`
	MemberType string         `json:"member_type" example:"player"`
	Level      int            `json:"level" example:"0"`
	JoinedAt   time.Time      `json:"joined_at" example:"2024-05-01T10:00:00Z"`
	Children   []*TreeNodeDTO `json:"children"`
}

func NewTreeDTO(n *domain.TreeNode) *TreeNodeDTO {
	out := &TreeNodeDTO{
		MemberID:   n.MemberID,
		Username:   n.Username,
		MemberType: string(n.Type),
		Level:      n.Level,
		JoinedAt:   n.JoinedAt,
		Children:   make([]*TreeNodeDTO, 0, len(n.Children)),
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, NewTreeDTO(c))
	}
	return out
}
