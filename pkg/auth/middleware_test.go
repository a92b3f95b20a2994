package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	valid, _ := jwtService.GenerateJWT(42, time.Now().Add(time.Hour))

	var seen int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = MemberID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(jwtService)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMember int
	}{
		{name: "No header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantMember: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMember, seen)
		})
	}
}
