package referrals

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/pkg/auth"
)

func NewMock(t *testing.T) (*ReferralHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authed(method, url string, memberID int) *http.Request {
	req := httptest.NewRequest(method, url, nil)
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, memberID))
}

func TestGetReferrals(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Default page",
			url:  "/api/referrals",
			prepareMock: func() {
				service.EXPECT().Referrals(gomock.Any(), 1, 50, 0).Return([]domain.ReferralSummary{
					{Relation: domain.ReferralRelation{ReferredID: 2, Level: 1}, Username: "bob", TotalEarned: decimal.RequireFromString("1000")},
					{Relation: domain.ReferralRelation{ReferredID: 3, Level: 2}, Username: "carol", TotalEarned: decimal.Zero},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:         "Bad limit",
			url:          "/api/referrals?limit=-5",
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Store failure",
			url:  "/api/referrals?limit=10&offset=10",
			prepareMock: func() {
				service.EXPECT().Referrals(gomock.Any(), 1, 10, 10).Return(nil, domain.ErrStore)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetReferrals(rr, authed("GET", tt.url, 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.ReferralDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
				assert.Equal(t, "1000.00", resp[0].TotalEarned)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ReferralStats(gomock.Any(), 1).Return(&domain.ReferralStats{
		TotalReferrals:  3,
		DirectReferrals: 1,
		TotalEarned:     decimal.RequireFromString("1250"),
		Levels:          []domain.LevelBreakdown{{Level: 1, Count: 1, Earned: decimal.RequireFromString("1000")}},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetStats(rr, authed("GET", "/api/referrals/stats", 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.ReferralStatsDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "1250.00", resp.TotalEarned)
	assert.Equal(t, 3, resp.TotalReferrals)
	require.Len(t, resp.Levels, 1)
}

func TestGetTree(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ReferralTree(gomock.Any(), 1).Return(&domain.TreeNode{
		MemberID: 1,
		Username: "a",
		Children: []*domain.TreeNode{{MemberID: 2, Username: "b", Level: 1}},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetTree(rr, authed("GET", "/api/referrals/tree", 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.TreeNodeDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Children, 1)
	assert.Equal(t, "b", resp.Children[0].Username)
	assert.NotNil(t, resp.Children[0].Children)
}

func TestGetBonuses(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Bonuses(gomock.Any(), 1, 0, 0).Return([]domain.BonusEntry{
		{Transaction: domain.Transaction{ID: 5, Type: domain.TypeBonus, Amount: decimal.RequireFromString("150")}, Level: 2},
	}, nil)

	rr := httptest.NewRecorder()
	handler.GetBonuses(rr, authed("GET", "/api/bonuses?limit=0", 1))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.BonusDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].Level)
	assert.Equal(t, "150.00", resp[0].Amount)
}
