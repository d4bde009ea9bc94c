package model

import (
	"encoding/json"
	"strconv"
)

// Sequence is the sequence number of an order. The platform sends it either
// as a JSON number or as a JSON string; it is written back in the form it
// was received.
type Sequence struct {
	value  string
	quoted bool
}

// NewSequence returns a sequence that encodes as a JSON number.
func NewSequence(n int64) Sequence {
	return Sequence{value: strconv.FormatInt(n, 10)}
}

func (s Sequence) String() string {
	return s.value
}

// Int64 parses the sequence. Non-numeric sequences return an error.
func (s Sequence) Int64() (int64, error) {
	return strconv.ParseInt(s.value, 10, 64)
}

func (s *Sequence) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Sequence{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = Sequence{value: value, quoted: true}
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*s = Sequence{value: number.String()}
	return nil
}

func (s Sequence) MarshalJSON() ([]byte, error) {
	if s.quoted {
		return json.Marshal(s.value)
	}
	if s.value == "" {
		return []byte("null"), nil
	}
	return []byte(s.value), nil
}
