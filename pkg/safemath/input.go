package safemath

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input is a loosely typed numeric field as handed over by a form layer:
// a number, a currency-formatted string, a boolean, null or anything else.
// The raw value is kept verbatim and normalised only when read.
type Input struct {
	raw any
}

// In wraps v as an Input.
func In(v any) Input {
	switch x := v.(type) {
	case Input:
		return x
	case *Input:
		if x == nil {
			return Input{}
		}
		return *x
	}
	return Input{raw: v}
}

// Raw returns the value as supplied.
func (i Input) Raw() any { return i.raw }

// IsSet reports whether a value was supplied at all.
func (i Input) IsSet() bool { return i.raw != nil }

// IsZero reports whether the field is unset, so omitempty drops it.
func (i Input) IsZero() bool { return i.raw == nil }

// Decimal returns the parsed value, or zero.
func (i Input) Decimal() decimal.Decimal { return ParseRobust(i.raw) }

// DecimalOr returns the parsed value, or fallback when the field is missing
// or unparseable.
func (i Input) DecimalOr(fallback decimal.Decimal) decimal.Decimal {
	return ParseRobustOr(i.raw, fallback)
}

// NonNegative returns the parsed value floored at zero.
func (i Input) NonNegative() decimal.Decimal { return ParseNonNegative(i.raw) }

// Int returns the parsed value truncated towards zero.
func (i Input) Int() int { return int(i.Decimal().IntPart()) }

// NonNegativeInt returns the parsed value floored at zero and truncated.
func (i Input) NonNegativeInt() int { return int(i.NonNegative().IntPart()) }

// String returns the raw value as text, or "" when unset.
func (i Input) String() string {
	switch x := i.raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

// Bool interprets flag-like values: true, "yes", "y", "on", "true" and any
// non-zero number are true.
func (i Input) Bool() bool {
	switch x := i.raw.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "on":
			return true
		case "false", "no", "n", "off", "":
			return false
		}
	}
	return !i.Decimal().IsZero()
}

// UnmarshalJSON keeps numbers as json.Number so no precision is lost.
func (i *Input) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	i.raw = v
	return nil
}

// MarshalJSON writes the raw value back out.
func (i Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.raw)
}

// UnmarshalYAML keeps scalar text verbatim so "1,00,000" and 100000 are
// treated alike.
func (i *Input) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		switch value.Tag {
		case "!!null":
			i.raw = nil
		case "!!bool":
			var b bool
			if err := value.Decode(&b); err != nil {
				return err
			}
			i.raw = b
		default:
			i.raw = value.Value
		}
		return nil
	}
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}
	i.raw = v
	return nil
}

// MarshalYAML writes the raw value back out.
func (i Input) MarshalYAML() (any, error) {
	return i.raw, nil
}
