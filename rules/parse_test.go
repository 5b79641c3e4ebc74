package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{name: "single", text: "3", want: []int{3}},
		{name: "list", text: "2,3", want: []int{2, 3}},
		{name: "whitespace", text: " 2 ,  3 ", want: []int{2, 3}},
		{name: "duplicates", text: "3,3,2,3", want: []int{2, 3}},
		{name: "bounds", text: "0,8", want: []int{0, 8}},
		{name: "empty", text: "", want: nil},
		{name: "blank", text: "   ", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCounts(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Values())
		})
	}
}

func TestParseCountsInvalid(t *testing.T) {
	tests := []struct {
		text  string
		token string
	}{
		{text: "3,x,5", token: "x"},
		{text: "9", token: "9"},
		{text: "-1", token: "-1"},
		{text: "2,,3", token: ""},
		{text: "2.5", token: "2.5"},
		{text: "NaN", token: "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseCounts(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRule)

			var ruleErr *InvalidRuleError
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tt.token, ruleErr.Token)
		})
	}
}

func TestParse(t *testing.T) {
	rs, err := Parse("2,3", "3")
	require.NoError(t, err)
	assert.Equal(t, Conway(), rs)

	_, err = Parse("2,3", "3,x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRule))
	assert.Contains(t, err.Error(), "birth")
	assert.Contains(t, err.Error(), `"x"`)
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		notation string
		want     RuleSet
	}{
		{notation: "B3/S23", want: Conway()},
		{notation: "S23/B3", want: Conway()},
		{notation: "b36/s23", want: HighLife()},
		{notation: " B/S ", want: RuleSet{}},
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			rs, err := ParseNotation(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rs)
		})
	}
}

func TestParseNotationInvalid(t *testing.T) {
	for _, notation := range []string{"", "B3", "B3/S23/X", "B3/B3", "X3/S23", "B9/S23", "B3/", "Bx/S2"} {
		t.Run(notation, func(t *testing.T) {
			_, err := ParseNotation(notation)
			assert.ErrorIs(t, err, ErrInvalidRule)
		})
	}
}
