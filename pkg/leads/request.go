package leads

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// CreateLeadRequest is the add-lead form payload.
type CreateLeadRequest struct {
	Name         string   `json:"name" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone"`
	Source       string   `json:"source"`
	Campaign     string   `json:"campaign"`
	DealValue    FlexInt  `json:"dealValue"`
	Priority     string   `json:"priority"`
	Tags         []string `json:"tags"`
	NextFollowUp string   `json:"nextFollowUp"`
}

// FlexInt accepts a JSON number or string. Anything that does not start
// with an integer decodes to zero instead of failing the request.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
	} else {
		s = string(data)
	}

	*f = FlexInt(ParseDealValue(s))
	return nil
}

// ParseDealValue reads the leading integer of s, ignoring surrounding
// whitespace and any trailing garbage. Input without a leading integer
// yields zero.
func ParseDealValue(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == digits {
		return 0
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}
