package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockTransactionRepo) {
	ctrl := gomock.NewController(t)
	memberRepo := NewMockMemberRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	service := New(memberRepo, transactionRepo, txManager)
	service.now = func() time.Time { return fixedNow }
	defer ctrl.Finish()
	return service, memberRepo, transactionRepo
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func amount(s string) gomock.Matcher { return decimalMatcher{want: decimal.RequireFromString(s)} }

func player(id int, vcoins string) *domain.Member {
	return &domain.Member{
		ID:            id,
		Username:      "player",
		Type:          domain.MemberTypePlayer,
		BalanceVcoins: decimal.RequireFromString(vcoins),
		BalanceRubles: decimal.Zero,
	}
}

func TestCreate(t *testing.T) {
	service, memberRepo, transactionRepo := NewMock(t)

	tests := []struct {
		name        string
		req         CreateRequest
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Pending bonus created",
			req: CreateRequest{
				MemberID: 1, Type: domain.TypeBonus, Amount: decimal.NewFromInt(1000), Currency: domain.CurrencyVcoins,
			},
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.StatusPending, tx.Status)
						assert.Nil(t, tx.ConfirmedAt)
						tx.ID = 10
						return tx, nil
					})
			},
		},
		{
			name: "Confirmed row carries confirmation time",
			req: CreateRequest{
				MemberID: 1, Type: domain.TypeTournament, Amount: decimal.NewFromInt(5), Currency: domain.CurrencyVcoins,
				Status: domain.StatusConfirmed,
			},
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						require.NotNil(t, tx.ConfirmedAt)
						assert.Equal(t, fixedNow, *tx.ConfirmedAt)
						return tx, nil
					})
			},
		},
		{
			name:        "Zero amount",
			req:         CreateRequest{MemberID: 1, Type: domain.TypeBonus, Amount: decimal.Zero, Currency: domain.CurrencyVcoins},
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Three fractional digits",
			req:         CreateRequest{MemberID: 1, Type: domain.TypeBonus, Amount: decimal.RequireFromString("1.001"), Currency: domain.CurrencyVcoins},
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:        "Unknown type",
			req:         CreateRequest{MemberID: 1, Type: "refund", Amount: decimal.NewFromInt(1), Currency: domain.CurrencyVcoins},
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidType,
		},
		{
			name:        "Unknown currency",
			req:         CreateRequest{MemberID: 1, Type: domain.TypeBonus, Amount: decimal.NewFromInt(1), Currency: "usd"},
			prepareMock: func() {},
			expectedErr: domain.ErrInvalidCurrency,
		},
		{
			name: "Deposit in foreign currency",
			req:  CreateRequest{MemberID: 1, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(1), Currency: domain.CurrencyRubles},
			prepareMock: func() {
				memberRepo.EXPECT().GetByID(gomock.Any(), 1).Return(player(1, "0"), nil)
			},
			expectedErr: domain.ErrInvalidCurrency,
		},
		{
			name: "Store failure",
			req:  CreateRequest{MemberID: 1, Type: domain.TypeBonus, Amount: decimal.NewFromInt(1), Currency: domain.CurrencyVcoins},
			prepareMock: func() {
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrStore)
			},
			expectedErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			tx, err := service.Create(context.Background(), tt.req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, tx)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, tx)
		})
	}
}

func TestComplete(t *testing.T) {
	service, memberRepo, transactionRepo := NewMock(t)

	pendingBonus := func() *domain.Transaction {
		return &domain.Transaction{ID: 5, MemberID: 1, Type: domain.TypeBonus, Amount: decimal.NewFromInt(1000), Currency: domain.CurrencyVcoins, Status: domain.StatusPending}
	}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedApplied bool
		expectedBalance string
		expectedErr     error
	}{
		{
			name: "Pending transaction applied",
			prepareMock: func() {
				transactionRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(pendingBonus(), nil)
				memberRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(player(1, "100.00"), nil)
				memberRepo.EXPECT().UpdateBalances(gomock.Any(), 1, amount("1100.00"), amount("0")).Return(nil)
				transactionRepo.EXPECT().MarkConfirmed(gomock.Any(), 5, fixedNow).Return(nil)
			},
			expectedApplied: true,
			expectedBalance: "1100.00",
		},
		{
			name: "Already confirmed is a no-op",
			prepareMock: func() {
				tx := pendingBonus()
				tx.Status = domain.StatusConfirmed
				transactionRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(tx, nil)
				memberRepo.EXPECT().GetByID(gomock.Any(), 1).Return(player(1, "1100.00"), nil)
			},
			expectedApplied: false,
			expectedBalance: "1100.00",
		},
		{
			name: "Withdrawal may drive balance negative",
			prepareMock: func() {
				tx := pendingBonus()
				tx.Type = domain.TypeWithdrawal
				transactionRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(tx, nil)
				memberRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(player(1, "10.00"), nil)
				memberRepo.EXPECT().UpdateBalances(gomock.Any(), 1, amount("-990.00"), amount("0")).Return(nil)
				transactionRepo.EXPECT().MarkConfirmed(gomock.Any(), 5, fixedNow).Return(nil)
			},
			expectedApplied: true,
			expectedBalance: "-990.00",
		},
		{
			name: "Transaction not found",
			prepareMock: func() {
				transactionRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(nil, domain.ErrTransactionNotFound)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Balance update fails",
			prepareMock: func() {
				transactionRepo.EXPECT().GetForUpdate(gomock.Any(), 5).Return(pendingBonus(), nil)
				memberRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(player(1, "0"), nil)
				memberRepo.EXPECT().UpdateBalances(gomock.Any(), 1, gomock.Any(), gomock.Any()).Return(domain.ErrStore)
			},
			expectedErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			member, applied, err := service.Complete(context.Background(), 5)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.False(t, applied)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedApplied, applied)
			assert.Equal(t, tt.expectedBalance, member.BalanceVcoins.StringFixed(2))
		})
	}
}

func TestCreateAndComplete(t *testing.T) {
	service, memberRepo, transactionRepo := NewMock(t)
	related := 3

	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			tx.ID = 8
			return tx, nil
		})
	transactionRepo.EXPECT().GetForUpdate(gomock.Any(), 8).
		Return(&domain.Transaction{ID: 8, MemberID: 1, Type: domain.TypeBonus, Amount: decimal.NewFromInt(150), Currency: domain.CurrencyVcoins, Status: domain.StatusPending}, nil)
	memberRepo.EXPECT().GetForUpdate(gomock.Any(), 1).Return(player(1, "0"), nil)
	memberRepo.EXPECT().UpdateBalances(gomock.Any(), 1, amount("150"), amount("0")).Return(nil)
	transactionRepo.EXPECT().MarkConfirmed(gomock.Any(), 8, fixedNow).Return(nil)

	tx, member, err := service.CreateAndComplete(context.Background(), CreateRequest{
		MemberID: 1, Type: domain.TypeBonus, Amount: decimal.NewFromInt(150), Currency: domain.CurrencyVcoins, RelatedMemberID: &related,
	})
	require.NoError(t, err)
	assert.True(t, tx.IsConfirmed())
	assert.Equal(t, "150.00", member.BalanceVcoins.StringFixed(2))
}

func TestRequestDeposit(t *testing.T) {
	service, memberRepo, transactionRepo := NewMock(t)
	influencer := &domain.Member{ID: 2, Type: domain.MemberTypeInfluencer}

	memberRepo.EXPECT().GetByID(gomock.Any(), 2).Return(influencer, nil).Times(2)
	transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, domain.CurrencyRubles, tx.Currency)
			assert.Equal(t, domain.TypeDeposit, tx.Type)
			return tx, nil
		})

	tx, err := service.RequestDeposit(context.Background(), 2, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, tx.Status)
}

func TestRequestWithdrawal(t *testing.T) {
	service, memberRepo, transactionRepo := NewMock(t)

	tests := []struct {
		name        string
		prepareMock func()
		expectedErr error
	}{
		{
			name: "Withdrawal above balance is still recorded",
			prepareMock: func() {
				memberRepo.EXPECT().GetByID(gomock.Any(), 1).Return(player(1, "5.00"), nil)
				transactionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, domain.TypeWithdrawal, tx.Type)
						return tx, nil
					})
			},
		},
		{
			name: "Unknown member",
			prepareMock: func() {
				memberRepo.EXPECT().GetByID(gomock.Any(), 1).Return(nil, domain.ErrMemberNotFound)
			},
			expectedErr: domain.ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.RequestWithdrawal(context.Background(), 1, decimal.NewFromInt(50))
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBalance(t *testing.T) {
	service, memberRepo, _ := NewMock(t)

	memberRepo.EXPECT().GetByID(gomock.Any(), 1).Return(player(1, "42.00"), nil)

	member, err := service.Balance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "42.00", member.MainBalance().StringFixed(2))
}
