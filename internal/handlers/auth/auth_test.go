package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refchain/internal/domain"
	"github.com/GlebRadaev/refchain/internal/dto"
	"github.com/GlebRadaev/refchain/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/refchain/pkg/auth"
	"github.com/GlebRadaev/refchain/pkg/utils"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

var newMember = &domain.Member{
	ID:           1,
	Username:     "newuser",
	Type:         domain.MemberTypePlayer,
	ReferralCode: "NEWU0001",
	Tier:         domain.TierNone,
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"username":"newuser","password":"password123","member_type":"player","referral_code":"ROOT0001"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), authservice.RegisterRequest{
					Username:     "newuser",
					Password:     "password123",
					Type:         "player",
					ReferralCode: "ROOT0001",
				}).Return(newMember, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User already exists",
			body: `{"username":"existinguser","password":"password123","member_type":"player"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).Return(nil, domain.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrUsernameTaken.Error(),
		},
		{
			name: "Invalid referral code",
			body: `{"username":"newuser","password":"password123","member_type":"player","referral_code":"NOPE0000"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).Return(nil, domain.ErrInvalidReferralCode)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidReferralCode.Error(),
		},
		{
			name: "Registered but cascade failed",
			body: `{"username":"newuser","password":"password123","member_type":"player","referral_code":"ROOT0001"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).
					Return(newMember, fmt.Errorf("%w: %w", domain.ErrCascadeIncomplete, errors.New("store down")))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Member registered but referral bonuses were not fully paid",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Error generating token",
			body: `{"username":"newuser","password":"password123","member_type":"player"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), gomock.Any()).Return(newMember, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			var resp dto.TokenResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "NEWU0001", resp.Member.ReferralCode)
			assert.Equal(t, "0.00", resp.Member.BalanceVcoins)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"username":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "newuser", "password123").Return(newMember, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"newuser","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "newuser", "wrong").Return(nil, domain.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: domain.ErrInvalidCredentials.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{"username":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Authenticated", func(t *testing.T) {
		service.EXPECT().Me(gomock.Any(), 1).Return(newMember, nil)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, 1))
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.MemberDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "newuser", resp.Username)
	})

	t.Run("Missing member in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Member gone", func(t *testing.T) {
		service.EXPECT().Me(gomock.Any(), 2).Return(nil, domain.ErrMemberNotFound)

		req := httptest.NewRequest("GET", "/api/auth/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, 2))
		rr := httptest.NewRecorder()

		handler.Me(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReferralLinkHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		memberID     int
		host         string
		forwarded    string
		prepareMock  func()
		expectedCode int
		expectedLink string
	}{
		{
			name:         "Link on request host",
			memberID:     1,
			host:         "refchain.local:8080",
			prepareMock:  func() { service.EXPECT().Me(gomock.Any(), 1).Return(newMember, nil) },
			expectedCode: http.StatusOK,
			expectedLink: "http://refchain.local:8080/register?ref=NEWU0001",
		},
		{
			name:         "Behind TLS proxy",
			memberID:     1,
			host:         "refchain.example",
			forwarded:    "https",
			prepareMock:  func() { service.EXPECT().Me(gomock.Any(), 1).Return(newMember, nil) },
			expectedCode: http.StatusOK,
			expectedLink: "https://refchain.example/register?ref=NEWU0001",
		},
		{
			name:         "Member gone",
			memberID:     2,
			host:         "refchain.example",
			prepareMock:  func() { service.EXPECT().Me(gomock.Any(), 2).Return(nil, domain.ErrMemberNotFound) },
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing member in context",
			host:         "refchain.example",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/auth/referral-link", nil)
			req.Host = tt.host
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tt.forwarded)
			}
			if tt.memberID != 0 {
				req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, tt.memberID))
			}
			rr := httptest.NewRecorder()

			handler.ReferralLink(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLink == "" {
				return
			}
			var resp dto.ReferralLinkDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "NEWU0001", resp.ReferralCode)
			assert.Equal(t, tt.expectedLink, resp.ReferralLink)
		})
	}
}
