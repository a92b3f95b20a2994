package referralservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	relationRepo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()
	service := New(relationRepo, txManager, DefaultMaxDepth)
	defer ctrl.Finish()
	return service, relationRepo
}

// ancestorsAt builds the relation list of a member sitting depth levels below the root.
func ancestorsAt(memberID, depth int) []domain.ReferralRelation {
	var relations []domain.ReferralRelation
	for level := 1; level <= depth; level++ {
		relations = append(relations, domain.ReferralRelation{ReferrerID: memberID - level, ReferredID: memberID, Level: level})
	}
	return relations
}

func TestPlanChain(t *testing.T) {
	tests := []struct {
		name          string
		referrerDepth int
		expectedEdges int
	}{
		{name: "Root referrer", referrerDepth: 0, expectedEdges: 1},
		{name: "Referrer at depth 3", referrerDepth: 3, expectedEdges: 4},
		{name: "Referrer at depth 9", referrerDepth: 9, expectedEdges: 10},
		{name: "Referrer at max depth is capped", referrerDepth: 10, expectedEdges: 10},
		{name: "Referrer beyond max depth is capped", referrerDepth: 15, expectedEdges: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			referrerID := 100
			chain := PlanChain(referrerID, 200, ancestorsAt(referrerID, tt.referrerDepth), DefaultMaxDepth)

			require.Len(t, chain, tt.expectedEdges)
			seen := make(map[int]bool)
			for i, rel := range chain {
				assert.Equal(t, i+1, rel.Level)
				assert.Equal(t, 200, rel.ReferredID)
				assert.False(t, seen[rel.ReferrerID], "duplicate referrer %d", rel.ReferrerID)
				seen[rel.ReferrerID] = true
			}
			assert.Equal(t, referrerID, chain[0].ReferrerID)
		})
	}
}

func TestPlanChain_CustomDepth(t *testing.T) {
	chain := PlanChain(10, 11, ancestorsAt(10, 5), 3)
	assert.Len(t, chain, 3)
	assert.Equal(t, 8, chain[2].ReferrerID)
}

func TestBuildChain(t *testing.T) {
	service, relationRepo := NewMock(t)
	referrer := &domain.Member{ID: 3}
	newMember := &domain.Member{ID: 4}

	tests := []struct {
		name          string
		referrer      *domain.Member
		prepareMock   func()
		expectedErr   error
		expectedEdges int
	}{
		{
			name:     "Chain under a two-level referrer",
			referrer: referrer,
			prepareMock: func() {
				relationRepo.EXPECT().ListAncestors(gomock.Any(), 3).Return([]domain.ReferralRelation{
					{ReferrerID: 2, ReferredID: 3, Level: 1},
					{ReferrerID: 1, ReferredID: 3, Level: 2},
				}, nil)
				relationRepo.EXPECT().CreateBatch(gomock.Any(), []domain.ReferralRelation{
					{ReferrerID: 3, ReferredID: 4, Level: 1},
					{ReferrerID: 2, ReferredID: 4, Level: 2},
					{ReferrerID: 1, ReferredID: 4, Level: 3},
				}).DoAndReturn(func(_ context.Context, rels []domain.ReferralRelation) ([]domain.ReferralRelation, error) {
					return rels, nil
				})
			},
			expectedEdges: 3,
		},
		{
			name:     "Duplicate pair",
			referrer: referrer,
			prepareMock: func() {
				relationRepo.EXPECT().ListAncestors(gomock.Any(), 3).Return(nil, nil)
				relationRepo.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateRelation)
			},
			expectedErr: domain.ErrConflict,
		},
		{
			name:        "Self referral",
			referrer:    newMember,
			prepareMock: func() {},
			expectedErr: domain.ErrValidation,
		},
		{
			name:     "Store failure",
			referrer: referrer,
			prepareMock: func() {
				relationRepo.EXPECT().ListAncestors(gomock.Any(), 3).Return(nil, domain.ErrStore)
			},
			expectedErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.BuildChain(context.Background(), tt.referrer, newMember)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Len(t, created, tt.expectedEdges)
		})
	}
}

func TestNew_DefaultDepth(t *testing.T) {
	service := New(nil, nil, 0)
	assert.Equal(t, DefaultMaxDepth, service.maxDepth)
}
