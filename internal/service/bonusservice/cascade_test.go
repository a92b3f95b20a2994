package bonusservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/events"
	"github.com/GlebRadaev/refchain/internal/pg"
	"github.com/GlebRadaev/refchain/internal/service/ledgerservice"
)

type mocks struct {
	relations *MockRelationRepo
	members   *MockMemberRepo
	levels    *MockLevelRepo
	ledger    *MockLedger
	tiers     *MockTierEvaluator
	publisher *events.MockPublisher
}

func NewMock(t *testing.T, policy Policy) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		relations: NewMockRelationRepo(ctrl),
		members:   NewMockMemberRepo(ctrl),
		levels:    NewMockLevelRepo(ctrl),
		ledger:    NewMockLedger(ctrl),
		tiers:     NewMockTierEvaluator(ctrl),
		publisher: events.NewMockPublisher(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	service := New(m.relations, m.members, m.levels, m.ledger, m.tiers, txManager, m.publisher, policy)
	defer ctrl.Finish()
	return service, m
}

// echoLedger confirms whatever it is asked to create and assigns sequential ids.
func echoLedger(m *mocks) {
	nextID := 100
	m.ledger.EXPECT().CreateAndComplete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req ledgerservice.CreateRequest) (*domain.Transaction, *domain.Member, error) {
			nextID++
			return &domain.Transaction{
				ID:              nextID,
				MemberID:        req.MemberID,
				Type:            req.Type,
				Amount:          req.Amount,
				Currency:        req.Currency,
				Status:          domain.StatusConfirmed,
				Description:     req.Description,
				RelatedMemberID: req.RelatedMemberID,
			}, &domain.Member{ID: req.MemberID}, nil
		}).AnyTimes()
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Referral bonus from dave (Level 1)", Describe(ReasonReferral, "dave", 1))
	assert.Equal(t, "First tournament bonus from dave (Level 3)", Describe(ReasonFirstTournament, "dave", 3))
	assert.Equal(t, "Deposit bonus from eve (Level 1)", Describe(ReasonDeposit, " eve ", 1))
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("best-effort")
	require.NoError(t, err)
	assert.Equal(t, PolicyBestEffort, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyFailFast, p)

	_, err = ParsePolicy("retry")
	assert.Error(t, err)
}

func TestCascadeBonuses_ThreeLevelChain(t *testing.T) {
	service, m := NewMock(t, PolicyFailFast)
	a := &domain.Member{ID: 1, Username: "a", Type: domain.MemberTypePlayer, Tier: domain.TierGold}
	b := &domain.Member{ID: 2, Username: "b", Type: domain.MemberTypeInfluencer, Tier: domain.TierNone}
	c := &domain.Member{ID: 3, Username: "c", Type: domain.MemberTypePlayer, Tier: domain.TierSilver}
	d := &domain.Member{ID: 4, Username: "d", Type: domain.MemberTypePlayer}

	m.relations.EXPECT().ListAncestors(gomock.Any(), d.ID).Return([]domain.ReferralRelation{
		{ReferrerID: c.ID, ReferredID: d.ID, Level: 1},
		{ReferrerID: b.ID, ReferredID: d.ID, Level: 2},
		{ReferrerID: a.ID, ReferredID: d.ID, Level: 3},
	}, nil)
	m.levels.EXPECT().List(gomock.Any()).Return(testLevels, nil)
	m.members.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
	m.members.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)
	m.members.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	echoLedger(m)
	m.tiers.EXPECT().Reevaluate(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	txs, err := service.CascadeBonuses(context.Background(), d, ReasonFirstTournament)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, c.ID, txs[0].MemberID)
	assert.Equal(t, "1100.00", txs[0].Amount.StringFixed(2))
	assert.Equal(t, domain.CurrencyVcoins, txs[0].Currency)
	assert.Equal(t, "First tournament bonus from d (Level 1)", txs[0].Description)

	assert.Equal(t, b.ID, txs[1].MemberID)
	assert.Equal(t, "1.50", txs[1].Amount.StringFixed(2))
	assert.Equal(t, domain.CurrencyRubles, txs[1].Currency)

	assert.Equal(t, a.ID, txs[2].MemberID)
	assert.Equal(t, "120.00", txs[2].Amount.StringFixed(2))
	require.NotNil(t, txs[2].RelatedMemberID)
	assert.Equal(t, d.ID, *txs[2].RelatedMemberID)
}

func TestCascadeBonuses_NoAncestors(t *testing.T) {
	service, m := NewMock(t, PolicyFailFast)

	m.relations.EXPECT().ListAncestors(gomock.Any(), 9).Return(nil, nil)

	txs, err := service.CascadeBonuses(context.Background(), &domain.Member{ID: 9}, ReasonReferral)
	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestCascadeBonuses_SkipsZeroBonus(t *testing.T) {
	service, m := NewMock(t, PolicyFailFast)

	m.relations.EXPECT().ListAncestors(gomock.Any(), 20).Return([]domain.ReferralRelation{
		{ReferrerID: 1, ReferredID: 20, Level: 11},
	}, nil)
	m.levels.EXPECT().List(gomock.Any()).Return(testLevels, nil)
	m.members.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, Type: domain.MemberTypePlayer}, nil)

	txs, err := service.CascadeBonuses(context.Background(), &domain.Member{ID: 20, Username: "deep"}, ReasonReferral)
	assert.NoError(t, err)
	assert.Empty(t, txs)
}

func TestCascadeBonuses_Policies(t *testing.T) {
	ancestors := []domain.ReferralRelation{
		{ReferrerID: 1, ReferredID: 4, Level: 1},
		{ReferrerID: 2, ReferredID: 4, Level: 2},
		{ReferrerID: 3, ReferredID: 4, Level: 3},
	}
	boom := errors.New("boom")

	tests := []struct {
		name         string
		policy       Policy
		expectedPaid int
	}{
		{name: "Fail fast stops at the failing ancestor", policy: PolicyFailFast, expectedPaid: 1},
		{name: "Best effort pays the rest", policy: PolicyBestEffort, expectedPaid: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, tt.policy)
			m.relations.EXPECT().ListAncestors(gomock.Any(), 4).Return(ancestors, nil)
			m.levels.EXPECT().List(gomock.Any()).Return(testLevels, nil)
			m.members.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, Type: domain.MemberTypePlayer}, nil)
			m.members.EXPECT().GetByID(gomock.Any(), 2).Return(nil, boom)
			m.members.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Member{ID: 3, Type: domain.MemberTypePlayer}, nil).AnyTimes()
			echoLedger(m)
			m.tiers.EXPECT().Reevaluate(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
			m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			txs, err := service.CascadeBonuses(context.Background(), &domain.Member{ID: 4, Username: "d"}, ReasonReferral)
			assert.ErrorIs(t, err, boom)
			assert.Len(t, txs, tt.expectedPaid)
		})
	}
}

func TestCascadeBonuses_PublishFailureIsNotFatal(t *testing.T) {
	service, m := NewMock(t, PolicyFailFast)

	m.relations.EXPECT().ListAncestors(gomock.Any(), 2).Return([]domain.ReferralRelation{{ReferrerID: 1, ReferredID: 2, Level: 1}}, nil)
	m.levels.EXPECT().List(gomock.Any()).Return(testLevels, nil)
	m.members.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, Type: domain.MemberTypePlayer}, nil)
	echoLedger(m)
	m.tiers.EXPECT().Reevaluate(gomock.Any(), 1).Return(true, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	txs, err := service.CascadeBonuses(context.Background(), &domain.Member{ID: 2, Username: "b"}, ReasonReferral)
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestPayDepositBonus(t *testing.T) {
	deposit := &domain.Transaction{ID: 50, MemberID: 2, Type: domain.TypeDeposit, Amount: decimal.RequireFromString("250.00"), Currency: domain.CurrencyVcoins}

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		expectPaid  bool
		amount      string
		expectedErr error
	}{
		{
			name: "Influencer referrer gets ten percent in rubles",
			prepareMock: func(m *mocks) {
				m.relations.EXPECT().FindDirectReferrer(gomock.Any(), 2).Return(&domain.ReferralRelation{ReferrerID: 1, ReferredID: 2, Level: 1}, nil)
				m.members.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, Type: domain.MemberTypeInfluencer}, nil)
				m.members.EXPECT().GetByID(gomock.Any(), 2).Return(&domain.Member{ID: 2, Username: "bob", Type: domain.MemberTypePlayer}, nil)
				echoLedger(m)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectPaid: true,
			amount:     "25.00",
		},
		{
			name: "Player referrer gets nothing",
			prepareMock: func(m *mocks) {
				m.relations.EXPECT().FindDirectReferrer(gomock.Any(), 2).Return(&domain.ReferralRelation{ReferrerID: 1, ReferredID: 2, Level: 1}, nil)
				m.members.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, Type: domain.MemberTypePlayer}, nil)
			},
		},
		{
			name: "No referrer",
			prepareMock: func(m *mocks) {
				m.relations.EXPECT().FindDirectReferrer(gomock.Any(), 2).Return(nil, nil)
			},
		},
		{
			name: "Store failure",
			prepareMock: func(m *mocks) {
				m.relations.EXPECT().FindDirectReferrer(gomock.Any(), 2).Return(nil, domain.ErrStore)
			},
			expectedErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, PolicyFailFast)
			tt.prepareMock(m)

			tx, err := service.PayDepositBonus(context.Background(), deposit)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			if !tt.expectPaid {
				assert.Nil(t, tx)
				return
			}
			require.NotNil(t, tx)
			assert.Equal(t, tt.amount, tx.Amount.StringFixed(2))
			assert.Equal(t, domain.CurrencyRubles, tx.Currency)
			assert.Equal(t, "Deposit bonus from bob (Level 1)", tx.Description)
		})
	}
}
