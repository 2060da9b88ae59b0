package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStreet(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain label is trimmed", raw: "  Avenida Matta  ", want: "Avenida Matta"},
		{name: "plain label unchanged", raw: "Gran Avenida", want: "Gran Avenida"},
		{name: "suffix after comma dropped", raw: "Main St, Block A", want: "Main St"},
		{name: "same street different block", raw: "Main St, Block B", want: "Main St"},
		{name: "intersection keeps first street", raw: "5th Ave & 3rd St, North", want: "5th Ave"},
		{name: "ampersand without comma", raw: "Alameda & Brasil", want: "Alameda"},
		{name: "case preserved", raw: "alameda, centro", want: "alameda"},
		{name: "empty input", raw: "", want: ""},
		{name: "only comma", raw: ", Santiago", want: ""},
		{name: "ampersand after comma ignored", raw: "Vicuna Mackenna, Metro Irarrazaval & Co", want: "Vicuna Mackenna"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStreet(tt.raw))
		})
	}
}

func TestNormalizeStreet_Idempotent(t *testing.T) {
	for _, raw := range []string{"Main St, Block A", "5th Ave & 3rd St, North", "  Oak Rd "} {
		once := NormalizeStreet(raw)
		assert.Equal(t, once, NormalizeStreet(once), raw)
	}
}
