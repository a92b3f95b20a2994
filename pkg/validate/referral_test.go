package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReferralCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "AB12CD34", want: true},
		{code: "ZZZZZZZZ", want: true},
		{code: "ab12cd34", want: false},
		{code: "AB12CD3", want: false},
		{code: "AB12CD345", want: false},
		{code: "AB12-D34", want: false},
		{code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReferralCode(tt.code))
		})
	}
}

func TestIsUsername(t *testing.T) {
	assert.True(t, IsUsername("alice"))
	assert.True(t, IsUsername("bob_99.x"))
	assert.False(t, IsUsername("al"))
	assert.False(t, IsUsername("has space"))
	assert.False(t, IsUsername("ünïcode"))
}
