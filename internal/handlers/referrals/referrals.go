package referrals

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/internal/handlers/httperr"
	"github.com/GlebRadaev/refchain/internal/handlers/query"
	"github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

type Service interface {
	Referrals(ctx context.Context, memberID, limit, offset int) ([]domain.ReferralSummary, error)
	ReferralStats(ctx context.Context, memberID int) (*domain.ReferralStats, error)
	ReferralTree(ctx context.Context, memberID int) (*domain.TreeNode, error)
	Bonuses(ctx context.Context, memberID, limit, offset int) ([]domain.BonusEntry, error)
}

type ReferralHandler struct {
	reportService Service
}

func New(reportService Service) *ReferralHandler {
	return &ReferralHandler{
		reportService: reportService,
	}
}

// GetReferrals godoc
//
//	@Summary		List referrals
//	@Description	Every member below the authenticated member, with the level they sit at and what they have earned the member so far.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size, 0 for all"	default(50)
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{array}		dto.ReferralDTO
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid pagination"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals [get]
func (h *ReferralHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	limit, offset, err := query.Page(r)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	referrals, err := h.reportService.Referrals(r.Context(), memberID, limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReferralDTOs(referrals))
}

// GetStats godoc
//
//	@Summary		Referral statistics
//	@Description	Total and direct referral counts, total bonus earned and a per-level breakdown.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralStatsDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/stats [get]
func (h *ReferralHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.reportService.ReferralStats(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReferralStatsDTO(stats))
}

// GetTree godoc
//
//	@Summary		Referral tree
//	@Description	Descendants of the authenticated member nested under their direct referrers.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TreeNodeDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/referrals/tree [get]
func (h *ReferralHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	tree, err := h.reportService.ReferralTree(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTreeDTO(tree))
}

// GetBonuses godoc
//
//	@Summary		Bonus history
//	@Description	Bonus transactions of the authenticated member, newest first, with the chain level each was paid for.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size, 0 for all"	default(50)
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{array}		dto.BonusDTO
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid pagination"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bonuses [get]
func (h *ReferralHandler) GetBonuses(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	limit, offset, err := query.Page(r)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	bonuses, err := h.reportService.Bonuses(r.Context(), memberID, limit, offset)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBonusDTOs(bonuses))
}
