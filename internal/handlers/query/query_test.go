package query

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/refchain/internal/domain"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		limit     int
		offset    int
		expectErr bool
	}{
		{name: "Defaults", url: "/x", limit: DefaultLimit},
		{name: "Explicit", url: "/x?limit=10&offset=20", limit: 10, offset: 20},
		{name: "All rows", url: "/x?limit=0", limit: 0},
		{name: "Negative", url: "/x?offset=-1", expectErr: true},
		{name: "Garbage", url: "/x?limit=ten", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := Page(httptest.NewRequest("GET", tt.url, nil))
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, tt.offset, offset)
		})
	}
}
