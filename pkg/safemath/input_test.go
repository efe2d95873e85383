package safemath

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type formFields struct {
	Amount Input `json:"amount" yaml:"amount"`
	Rate   Input `json:"rate" yaml:"rate"`
	Years  Input `json:"years" yaml:"years"`
	Metro  Input `json:"metro" yaml:"metro"`
}

func TestInputUnmarshalJSON(t *testing.T) {
	var f formFields
	err := json.Unmarshal([]byte(`{"amount":"₹1,00,000","rate":7.25,"years":null,"metro":true}`), &f)
	require.NoError(t, err)

	assert.True(t, f.Amount.Decimal().Equal(decimal.NewFromInt(100000)))
	assert.True(t, f.Rate.Decimal().Equal(decimal.RequireFromString("7.25")))
	assert.False(t, f.Years.IsSet())
	assert.True(t, f.Years.Decimal().IsZero())
	assert.True(t, f.Metro.Bool())
}

func TestInputUnmarshalYAML(t *testing.T) {
	doc := "amount: 1,00,000\nrate: \"12%\"\nyears: 10\nmetro: no\n"
	var f formFields
	require.NoError(t, yaml.Unmarshal([]byte(doc), &f))

	assert.True(t, f.Amount.Decimal().Equal(decimal.NewFromInt(100000)))
	assert.True(t, f.Rate.Decimal().Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 10, f.Years.Int())
	assert.False(t, f.Metro.Bool())
	assert.True(t, f.Metro.IsSet())
}

func TestInputAccessors(t *testing.T) {
	assert.Equal(t, "", Input{}.String())
	assert.Equal(t, "quarterly", In("quarterly").String())
	assert.Equal(t, "12", In(12).String())
	assert.True(t, In("-5").NonNegative().IsZero())
	assert.True(t, In(nil).DecimalOr(decimal.NewFromInt(30)).Equal(decimal.NewFromInt(30)))
	assert.True(t, In("yes").Bool())
	assert.True(t, In(1).Bool())
	assert.False(t, In(0).Bool())
	assert.Equal(t, 9, In("9.99").Int())
	assert.Equal(t, 0, In("-3").NonNegativeInt())
	assert.Equal(t, 24, In("24 months").NonNegativeInt())
	assert.Equal(t, In(5), In(In(5)))
}

func TestInputMarshalJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(formFields{Amount: In("₹500"), Rate: In(8)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"₹500","rate":8,"years":null,"metro":null}`, string(out))
}
