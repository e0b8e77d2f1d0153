package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque, server-assigned identifier. The board API may hand out
// numeric or string ids; ID keeps the JSON form it was decoded from so the
// value is echoed back exactly.
type ID struct {
	raw     string
	numeric bool
}

// NewID returns a string-valued ID.
func NewID(s string) ID {
	return ID{raw: s}
}

// NumericID returns a number-valued ID.
func NumericID(n int64) ID {
	return ID{raw: strconv.FormatInt(n, 10), numeric: true}
}

func (id ID) String() string { return id.raw }

// IsZero reports whether the id was never set.
func (id ID) IsZero() bool { return id.raw == "" && !id.numeric }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding id: %w", err)
		}
		*id = ID{raw: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding id %s: %w", data, err)
	}
	*id = ID{raw: n.String(), numeric: true}
	return nil
}
