package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_CountryName(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		code  string
		want  string
		found bool
	}{
		{code: "US", want: "United States", found: true},
		{code: "it", want: "Italy", found: true},
		{code: "De", want: "Germany", found: true},
		{code: "GB", want: "United Kingdom", found: true},
		{code: "XX", want: "", found: false},
		{code: "", want: "", found: false},
	}

	for _, tt := range tests {
		t.Run("code "+tt.code, func(t *testing.T) {
			name, ok := r.CountryName(tt.code)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}
