package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNickname(t *testing.T) {
	cases := map[string]string{
		"Virat K.":     "viratk",
		"virat-k":      "viratk",
		"  MS_Dhoni7 ": "msdhoni7",
		"ÉlAn":         "lan",
		"!!!":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeNickname(in), "input %q", in)
	}
}
