package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/internal/handlers/httperr"
	"github.com/GlebRadaev/refchain/internal/service/adminservice"
	"github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

type Service interface {
	ConfirmTournament(ctx context.Context, memberID int, name string, reward decimal.Decimal) (*adminservice.TournamentResult, error)
	ConfirmDeposit(ctx context.Context, txID int) (*adminservice.DepositResult, error)
	ManualBonus(ctx context.Context, memberID int, amount decimal.Decimal, reason string) (*domain.Transaction, error)
	CompleteTransaction(ctx context.Context, txID int) (*domain.Member, bool, error)
	Stats(ctx context.Context) (*domain.SystemStats, error)
}

// Members resolves the authenticated member for the admin guard.
type Members interface {
	Me(ctx context.Context, memberID int) (*domain.Member, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// RequireAdmin lets through only members flagged as admins. It must run after auth.Middleware.
func RequireAdmin(members Members) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			memberID, ok := auth.MemberID(r.Context())
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			member, err := members.Me(r.Context(), memberID)
			if err != nil {
				httperr.Respond(w, err)
				return
			}
			if !member.IsAdmin {
				zap.L().Info("admin route denied", zap.Int("memberID", memberID), zap.String("path", r.URL.Path))
				httperr.Respond(w, domain.ErrAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ConfirmDeposit godoc
//
//	@Summary		Confirm a deposit
//	@Description	Completes a pending deposit and pays the influencer deposit bonus. A second confirmation of the same deposit is rejected.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmDepositRequestDTO	true	"Deposit to confirm"
//	@Success		200		{object}	dto.ConfirmDepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Already confirmed"
//	@Failure		422		{object}	utils.Response	"Not a deposit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/confirm-deposit [post]
func (h *AdminHandler) ConfirmDeposit(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.adminService.ConfirmDeposit(r.Context(), req.TransactionID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	resp := dto.ConfirmDepositResponseDTO{
		Deposit: dto.NewTransactionDTO(result.Deposit),
		Balance: result.Member.MainBalance().StringFixed(domain.MoneyPlaces),
	}
	if result.Bonus != nil {
		bonus := dto.NewTransactionDTO(result.Bonus)
		resp.Bonus = &bonus
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ConfirmTournament godoc
//
//	@Summary		Confirm tournament participation
//	@Description	Credits an optional reward. The first tournament of a member pays first tournament bonuses up its referral chain.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConfirmTournamentRequestDTO	true	"Tournament result"
//	@Success		200		{object}	dto.ConfirmTournamentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Failure		422		{object}	utils.Response	"Invalid reward"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/confirm-tournament [post]
func (h *AdminHandler) ConfirmTournament(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmTournamentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.adminService.ConfirmTournament(r.Context(), req.MemberID, req.TournamentName, req.Reward)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	resp := dto.ConfirmTournamentResponseDTO{
		Member:          dto.NewMemberDTO(result.Member),
		FirstTournament: result.FirstTournament,
		Bonuses:         dto.NewTransactionDTOs(result.Bonuses),
	}
	if result.Reward != nil {
		reward := dto.NewTransactionDTO(result.Reward)
		resp.Reward = &reward
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ManualBonus godoc
//
//	@Summary		Assign a manual bonus
//	@Description	Credits a member in its own currency outside of any referral chain.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ManualBonusRequestDTO	true	"Bonus"
//	@Success		201		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Member not found"
//	@Failure		422		{object}	utils.Response	"Invalid amount or missing reason"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bonuses [post]
func (h *AdminHandler) ManualBonus(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualBonusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := h.adminService.ManualBonus(r.Context(), req.MemberID, req.Amount, req.Reason)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionDTO(tx))
}

// CompleteTransaction godoc
//
//	@Summary		Complete a pending transaction
//	@Description	Applies a pending transaction to its member's balance. Completing an already confirmed transaction changes nothing.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Transaction id"
//	@Success		200	{object}	dto.CompleteTransactionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid transaction id"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/transactions/{id}/complete [post]
func (h *AdminHandler) CompleteTransaction(w http.ResponseWriter, r *http.Request) {
	txID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || txID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}
	member, applied, err := h.adminService.CompleteTransaction(r.Context(), txID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CompleteTransactionResponseDTO{
		Applied: applied,
		Member:  dto.NewMemberDTO(member),
	})
}

// GetStats godoc
//
//	@Summary		System statistics
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsDTO
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewStatsDTO(stats))
}
