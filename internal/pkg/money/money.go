// Package money coerces arbitrary input into decimal amounts. Every numeric
// field that reaches a calculation or the store goes through here first, so a
// blank form field or garbage value becomes zero instead of poisoning a total.
package money

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount converts v into a decimal amount. nil, empty strings, unparseable
// text, NaN and Inf all coerce to zero; an amount is never invalid.
func Amount(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return x
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero
		}
		return *x
	case Value:
		return x.Dec()
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case json.Number:
		return parse(string(x))
	case string:
		return parse(x)
	case *string:
		if x == nil {
			return decimal.Zero
		}
		return parse(*x)
	default:
		return decimal.Zero
	}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Value is a JSON amount that never fails to decode. The forms the dashboard
// sends over the years include numbers, quoted numbers, "" and null; all of
// them land as a usable decimal.
type Value struct {
	d decimal.Decimal
}

func New(d decimal.Decimal) Value {
	return Value{d: d}
}

func FromFloat(f float64) Value {
	return Value{d: fromFloat(f)}
}

// Dec returns the underlying decimal.
func (v Value) Dec() decimal.Decimal {
	return v.d
}

func (v Value) IsZero() bool {
	return v.d.IsZero()
}

func (v *Value) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		v.d = decimal.Zero
		return nil
	}
	if s[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			v.d = decimal.Zero
			return nil
		}
		v.d = parse(inner)
		return nil
	}
	v.d = parse(s)
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return v.d.MarshalJSON()
}
