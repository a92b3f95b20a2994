package levels

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/internal/handlers/httperr"
	"github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Level, error)
	Progress(ctx context.Context, memberID int) (*domain.LevelProgress, error)
}

type LevelHandler struct {
	levelService Service
}

func New(levelService Service) *LevelHandler {
	return &LevelHandler{
		levelService: levelService,
	}
}

// GetLevels godoc
//
//	@Summary		Tier table
//	@Description	Tiers ordered by the number of direct referrals they require.
//	@Tags			Levels
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.LevelDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/levels [get]
func (h *LevelHandler) GetLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.levelService.List(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	out := make([]dto.LevelDTO, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.NewLevelDTO(l))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetCurrent godoc
//
//	@Summary		Current tier
//	@Description	Tier of the authenticated member, its multiplier and how many direct referrals the next tier still needs.
//	@Tags			Levels
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LevelProgressDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/levels/current [get]
func (h *LevelHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	progress, err := h.levelService.Progress(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLevelProgressDTO(progress))
}
