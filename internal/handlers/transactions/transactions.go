package transactions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/internal/handlers/httperr"
	"github.com/GlebRadaev/refchain/internal/handlers/query"
	"github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

type Service interface {
	RequestDeposit(ctx context.Context, memberID int, amount decimal.Decimal) (*domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, memberID int, amount decimal.Decimal) (*domain.Transaction, error)
	Balance(ctx context.Context, memberID int) (*domain.Member, error)
}

type Reports interface {
	Transactions(ctx context.Context, memberID int, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	ledgerService Service
	reports       Reports
}

func New(ledgerService Service, reports Reports) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		reports:       reports,
	}
}

// GetTransactions godoc
//
//	@Summary		Transaction history
//	@Description	Transactions of the authenticated member, newest first.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	query		string	false	"Filter by type"	Enums(deposit, bonus, withdrawal, tournament)
//	@Param			limit	query		int		false	"Page size, 0 for all"	default(50)
//	@Param			offset	query		int		false	"Rows to skip"
//	@Success		200		{array}		dto.TransactionDTO
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid filter"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	limit, offset, err := query.Page(r)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	txs, err := h.reports.Transactions(r.Context(), memberID, domain.TransactionFilter{
		Type:   domain.TransactionType(r.URL.Query().Get("type")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionDTOs(txs))
}

// Deposit godoc
//
//	@Summary		Request a deposit
//	@Description	Opens a pending deposit in the member's currency. The balance changes once an admin confirms it.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Deposit amount"
//	@Success		201		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/deposit [post]
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.request(w, r, h.ledgerService.RequestDeposit)
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Opens a pending withdrawal in the member's currency. The balance is not checked.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AmountRequestDTO	true	"Withdrawal amount"
//	@Success		201		{object}	dto.TransactionDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Member not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.request(w, r, h.ledgerService.RequestWithdrawal)
}

func (h *TransactionHandler) request(
	w http.ResponseWriter,
	r *http.Request,
	open func(ctx context.Context, memberID int, amount decimal.Decimal) (*domain.Transaction, error),
) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tx, err := open(r.Context(), memberID, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewTransactionDTO(tx))
}

// GetBalance godoc
//
//	@Summary		Current balance
//	@Description	Both balances of the authenticated member and the one it is paid in.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Member not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/balance [get]
func (h *TransactionHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	memberID := r.Context().Value(auth.UserIDKey).(int)

	member, err := h.ledgerService.Balance(r.Context(), memberID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceDTO(member))
}
