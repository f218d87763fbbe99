package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexUint64 is a uint64 that decodes from a JSON number, a numeric string, an empty
// string or null. Clients that build request tokens in JavaScript often send strings.
type FlexUint64 uint64

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FlexUint64) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexUint64(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("FlexUint64: expected number or string, got %s", string(data))
	}
	v, err := ParseUint64(s)
	if err != nil {
		return err
	}
	*f = FlexUint64(v)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f FlexUint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

// Uint64 converts FlexUint64 back to uint64.
func (f FlexUint64) Uint64() uint64 {
	return uint64(f)
}

// ParseUint64 parses a decimal string; blank input is zero.
func ParseUint64(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("FlexUint64: invalid uint64 string %q: %w", s, err)
	}
	return v, nil
}
