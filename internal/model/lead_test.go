package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountries_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		base      Text
		expansion []string
	}{
		{"plain string", `"Germany"`, "Germany", nil},
		{"object", `{"base":"France","expansion":["Spain","Italy"]}`, "France", []string{"Spain", "Italy"}},
		{"object without expansion", `{"base":"France"}`, "France", nil},
		{"object with empty expansion", `{"base":"France","expansion":[]}`, "France", []string{}},
		{"null", `null`, "", nil},
		{"number", `42`, "42", nil},
		{"array", `["Germany"]`, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c Countries
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			require.Equal(t, tt.base, c.Base)
			if tt.expansion == nil {
				require.Empty(t, c.Expansion)
			} else {
				require.Equal(t, tt.expansion, c.Expansion.Strings())
			}
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{`1234.5`, 1234.5},
		{`"1234.5"`, 1234.5},
		{`" 99 "`, 99},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
		{`"NaN"`, 0},
		{`"Inf"`, 0},
		{`{"v":1}`, 0},
		{`-12`, -12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			var a Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &a))
			require.InDelta(t, tt.want, a.Float64(), 1e-9)
		})
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var req struct {
		A Text `json:"a"`
		B Text `json:"b"`
		C Text `json:"c"`
		D Text `json:"d"`
		E Text `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a":"<b>hi</b>","b":1500,"c":true,"d":null,"e":{"x":1}}`), &req)
	require.NoError(t, err)

	require.Equal(t, Text("<b>hi</b>"), req.A)
	require.Equal(t, Text("1500"), req.B)
	require.Equal(t, Text("true"), req.C)
	require.Empty(t, req.D)
	require.Empty(t, req.E)
}

func TestTextList_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var l TextList
	require.NoError(t, json.Unmarshal([]byte(`["Accounting", "", 3, null, "Payroll"]`), &l))
	require.Equal(t, []string{"Accounting", "3", "Payroll"}, l.Strings())

	require.NoError(t, json.Unmarshal([]byte(`"Accounting"`), &l))
	require.Equal(t, []string{"Accounting"}, l.Strings())

	require.NoError(t, json.Unmarshal([]byte(`{"a":1}`), &l))
	require.Empty(t, l)
}

func TestLeadRequest_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	payload := `{
		"contact": {"name": "Jane", "email": "jane@example.com", "phone": "+31 20 123"},
		"countries": {"base": "Netherlands", "expansion": ["Belgium"]},
		"services": ["Branch registration"],
		"addons": [],
		"finalTotal": "2500",
		"businessStage": "Scaling",
		"agent_name": "Sam"
	}`

	var req LeadRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	require.Equal(t, Text("Jane"), req.Contact.Name)
	require.Equal(t, Text("Netherlands"), req.Countries.Base)
	require.Equal(t, []string{"Belgium"}, req.Countries.Expansion.Strings())
	require.Equal(t, []string{"Branch registration"}, req.Services.Strings())
	require.Empty(t, req.Addons)
	require.InDelta(t, 2500.0, req.FinalTotal.Float64(), 1e-9)
	require.Equal(t, Text("Scaling"), req.BusinessStage)
	require.Equal(t, Text("Sam"), req.AgentName)
	require.Empty(t, req.Plan)
}

func TestContact_NonObject(t *testing.T) {
	t.Parallel()

	var req LeadRequest
	require.NoError(t, json.Unmarshal([]byte(`{"contact":"jane@example.com"}`), &req))
	require.Empty(t, req.Contact.Email)
}
