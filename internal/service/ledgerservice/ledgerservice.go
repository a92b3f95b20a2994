package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

type MemberRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Member, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Member, error)
	UpdateBalances(ctx context.Context, id int, vcoins, rubles decimal.Decimal) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	GetForUpdate(ctx context.Context, id int) (*domain.Transaction, error)
	MarkConfirmed(ctx context.Context, id int, at time.Time) error
}

// CreateRequest describes a new ledger entry. An empty Status means pending.
type CreateRequest struct {
	MemberID        int
	Type            domain.TransactionType
	Amount          decimal.Decimal
	Currency        domain.Currency
	Status          domain.TransactionStatus
	Description     string
	RelatedMemberID *int
}

type Service struct {
	memberRepo      MemberRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	now             func() time.Time
}

func New(memberRepo MemberRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		memberRepo:      memberRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		now:             time.Now,
	}
}

func (s *Service) validate(ctx context.Context, req CreateRequest) error {
	if err := domain.ValidateAmount(req.Amount); err != nil {
		return err
	}
	if !req.Type.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidType, req.Type)
	}
	if !req.Currency.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCurrency, req.Currency)
	}
	switch req.Status {
	case "", domain.StatusPending, domain.StatusConfirmed:
	default:
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, req.Status)
	}
	if req.Type != domain.TypeDeposit {
		return nil
	}
	member, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return err
	}
	if member.Type.Currency() != req.Currency {
		return fmt.Errorf("%w: %s members deposit in %s", domain.ErrInvalidCurrency, member.Type, member.Type.Currency())
	}
	return nil
}

// Create validates the request and stores the row. A row created as confirmed is recorded
// as is and does not touch any balance.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Transaction, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	tx := &domain.Transaction{
		MemberID:        req.MemberID,
		Type:            req.Type,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Status:          req.Status,
		Description:     req.Description,
		RelatedMemberID: req.RelatedMemberID,
	}
	if tx.Status == "" {
		tx.Status = domain.StatusPending
	}
	if tx.Status == domain.StatusConfirmed {
		at := s.now()
		tx.ConfirmedAt = &at
	}

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		zap.L().Error("can't create transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Complete confirms a pending transaction and applies it to the owner's balance.
// Completing an already confirmed transaction changes nothing and reports applied=false.
func (s *Service) Complete(ctx context.Context, txID int) (*domain.Member, bool, error) {
	var (
		member  *domain.Member
		applied bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		tx, err := s.transactionRepo.GetForUpdate(ctx, txID)
		if err != nil {
			return err
		}
		if tx.IsConfirmed() {
			member, err = s.memberRepo.GetByID(ctx, tx.MemberID)
			return err
		}

		member, err = s.memberRepo.GetForUpdate(ctx, tx.MemberID)
		if err != nil {
			return err
		}
		member.Apply(tx)
		if member.Balance(tx.Currency).IsNegative() {
			zap.L().Warn("balance went negative",
				zap.Int("memberID", member.ID),
				zap.Int("transactionID", tx.ID),
				zap.String("balance", member.Balance(tx.Currency).StringFixed(domain.MoneyPlaces)),
			)
		}
		if err := s.memberRepo.UpdateBalances(ctx, member.ID, member.BalanceVcoins, member.BalanceRubles); err != nil {
			return err
		}
		if err := s.transactionRepo.MarkConfirmed(ctx, tx.ID, s.now()); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		zap.L().Error("can't complete transaction", zap.Int("transactionID", txID), zap.Error(err))
		return nil, false, err
	}
	if applied {
		zap.L().Info("transaction completed", zap.Int("transactionID", txID), zap.Int("memberID", member.ID))
	}
	return member, applied, nil
}

// CreateAndComplete records a pending transaction and confirms it in the same atomic scope.
func (s *Service) CreateAndComplete(ctx context.Context, req CreateRequest) (*domain.Transaction, *domain.Member, error) {
	var (
		tx     *domain.Transaction
		member *domain.Member
	)
	req.Status = domain.StatusPending
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		tx, err = s.Create(ctx, req)
		if err != nil {
			return err
		}
		member, _, err = s.Complete(ctx, tx.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	at := s.now()
	tx.Status = domain.StatusConfirmed
	tx.ConfirmedAt = &at
	return tx, member, nil
}

// RequestDeposit opens a pending deposit in the member's own currency.
func (s *Service) RequestDeposit(ctx context.Context, memberID int, amount decimal.Decimal) (*domain.Transaction, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, CreateRequest{
		MemberID:    memberID,
		Type:        domain.TypeDeposit,
		Amount:      amount,
		Currency:    member.Type.Currency(),
		Description: "Deposit request",
	})
}

// RequestWithdrawal opens a pending withdrawal. The balance is not checked, completion may
// drive it negative.
func (s *Service) RequestWithdrawal(ctx context.Context, memberID int, amount decimal.Decimal) (*domain.Transaction, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(member.MainBalance()) {
		zap.L().Warn("withdrawal exceeds balance",
			zap.Int("memberID", memberID),
			zap.String("amount", amount.String()),
			zap.String("balance", member.MainBalance().StringFixed(domain.MoneyPlaces)),
		)
	}
	return s.Create(ctx, CreateRequest{
		MemberID:    memberID,
		Type:        domain.TypeWithdrawal,
		Amount:      amount,
		Currency:    member.Type.Currency(),
		Description: "Withdrawal request",
	})
}

func (s *Service) Balance(ctx context.Context, memberID int) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	return member, nil
}
