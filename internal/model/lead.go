package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LeadRequest is the raw lead-capture payload as posted by the front end.
// Every field is optional at this level; required fields are checked when
// the request is normalized.
type LeadRequest struct {
	Contact   Contact   `json:"contact"`
	Countries Countries `json:"countries"`
	Services  TextList  `json:"services"`
	Addons    TextList  `json:"addons"`

	FinalTotal    Amount `json:"finalTotal"`
	Timeline      Text   `json:"timeline"`
	BusinessStage Text   `json:"businessStage"`
	Plan          Text   `json:"plan"`

	BranchTotalStandalone Text `json:"branch_total_standalone"`
	BranchProcessingTime  Text `json:"branch_processing_time"`
	LTDRegistrationFee    Text `json:"ltd_registration_fee"`
	TaxIDRegistrationFee  Text `json:"tax_id_registration_fee"`
	EntityType            Text `json:"entity_type"`
	LeadPhaseCTA          Text `json:"lead_phase_cta"`

	AgentName     Text `json:"agent_name"`
	AgentPosition Text `json:"agent_position"`
	AgentPhone    Text `json:"agent_phone"`
	AgentEmail    Text `json:"agent_email"`
}

// Contact holds the prospect's contact details
type Contact struct {
	Name  Text `json:"name"`
	Email Text `json:"email"`
	Phone Text `json:"phone"`
}

// UnmarshalJSON treats anything other than an object as an empty contact.
func (c *Contact) UnmarshalJSON(data []byte) error {
	*c = Contact{}
	if !isObject(data) {
		return nil
	}
	type plain Contact
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Contact(p)
	return nil
}

// Countries is either a bare country name or {"base": ..., "expansion": [...]}.
type Countries struct {
	Base      Text     `json:"base"`
	Expansion TextList `json:"expansion"`
}

// UnmarshalJSON accepts the string and object forms.
func (c *Countries) UnmarshalJSON(data []byte) error {
	*c = Countries{}
	data = bytes.TrimSpace(data)

	if isObject(data) {
		type plain Countries
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*c = Countries(p)
		return nil
	}

	var base Text
	if err := base.UnmarshalJSON(data); err != nil {
		return err
	}
	c.Base = base
	return nil
}

// Text is a free-text field. JSON strings are taken as is, numbers and
// booleans keep their literal spelling, everything else reads as empty.
type Text string

// String returns the raw value
func (t Text) String() string {
	return string(t)
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n':
		// objects, arrays and null
	default:
		*t = Text(data)
	}
	return nil
}

// TextList is a list of free-text values. A single string is read as a
// one-element list.
type TextList []Text

// UnmarshalJSON implements json.Unmarshaler
func (l *TextList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(TextList, 0, len(raw))
		for _, item := range raw {
			var t Text
			if err := t.UnmarshalJSON(item); err != nil {
				return err
			}
			if strings.TrimSpace(string(t)) != "" {
				out = append(out, t)
			}
		}
		*l = out
	case '"':
		var t Text
		if err := t.UnmarshalJSON(data); err != nil {
			return err
		}
		if strings.TrimSpace(string(t)) != "" {
			*l = TextList{t}
		}
	}
	return nil
}

// Strings returns the values as plain strings
func (l TextList) Strings() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = string(t)
	}
	return out
}

// Amount is a monetary figure. Numbers and numeric strings are accepted;
// anything else silently reads as zero.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*a = Amount(f)
	return nil
}

// Float64 returns the amount as a float64
func (a Amount) Float64() float64 {
	return float64(a)
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}
