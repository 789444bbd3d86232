package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value is a scalar that payloads send either as a number or as text,
// e.g. 12, "45%" or "32:14".
type Value struct {
	text   string
	number float64
	isNum  bool
}

func NumberValue(f float64) Value {
	return Value{number: f, isNum: true}
}

func TextValue(s string) Value {
	return Value{text: s}
}

func (v Value) IsNumber() bool {
	return v.isNum
}

func (v Value) IsZero() bool {
	return !v.isNum && v.text == ""
}

func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}

	return v.text
}

// Float returns the numeric reading of the value. Text is read up to the
// longest numeric prefix, so "45%" is 45 and "12/20" is 12. Anything without
// a numeric prefix reads as 0.
func (v Value) Float() float64 {
	if v.isNum {
		return v.number
	}

	prefix := numericPrefix(strings.TrimSpace(v.text))
	if prefix == "" {
		return 0
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}

	return f
}

func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0

		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}

		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return ""
	}

	// Exponent only counts when followed by at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}

		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}

		if j > start {
			i = j
		}
	}

	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("could not decode value: %w", err)
		}

		*v = TextValue(s)

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("value must be a number or a string: %w", err)
	}

	*v = NumberValue(f)

	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isNum {
		return json.Marshal(v.number)
	}

	return json.Marshal(v.text)
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}

	switch node.ShortTag() {
	case "!!null":
		*v = Value{}
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: could not decode number: %w", node.Line, err)
		}

		*v = NumberValue(f)
	default:
		*v = TextValue(node.Value)
	}

	return nil
}
