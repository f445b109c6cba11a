package fault

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses a user-entered decimal that may use either a period or a
// comma as the decimal separator. It reports false for empty, malformed and
// non-finite input.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// RawValue is an unparsed numeric field as typed by a user or read from a
// case file. It decodes from either a JSON string or a JSON number.
type RawValue string

// Float formats a pre-parsed number as a RawValue
func Float(v float64) RawValue {
	return RawValue(strconv.FormatFloat(v, 'g', -1, 64))
}

// UnmarshalJSON accepts "0,05", "0.05", 0.05 and null
func (r *RawValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = RawValue(n.String())
	return nil
}
