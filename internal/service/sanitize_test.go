package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/houseofcompanies/leadmail/internal/model"
)

func decode(t *testing.T, body string) *model.LeadRequest {
	t.Helper()

	var req model.LeadRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestEscape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "N/A", Escape("", "N/A"))
	require.Equal(t, "N/A", Escape("   ", "N/A"))
	require.Equal(t, "&lt;b&gt;&#34;hi&#34; &amp; &#39;bye&#39;&lt;/b&gt;", Escape(`<b>"hi" & 'bye'</b>`, ""))
	require.Equal(t, "plain", Escape("plain", "N/A"))
}

func TestEscape_NoRawMarkupCharacters(t *testing.T) {
	t.Parallel()

	inputs := []string{`<img src=x onerror="alert(1)">`, `'";--`, "a<b>c", `">`, "<<<>>>"}
	for _, in := range inputs {
		out := Escape(in, "")
		require.False(t, strings.ContainsAny(out, `<>"'`), "unescaped output %q for %q", out, in)
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"jane@example.com", "j.doe+lead@sub.example.co.uk", "a_b%c@x-y.io"}
	invalid := []string{"jane", "jane@", "@example.com", "jane@example", "jane@example.c", "jane@exa mple.com", "jane@@example.com", "jane@example.c0m"}

	for _, addr := range valid {
		require.True(t, ValidEmail(addr), addr)
	}
	for _, addr := range invalid {
		require.False(t, ValidEmail(addr), addr)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	t.Parallel()

	form, err := Normalize(decode(t, `{"contact":{"name":"Jane","email":"jane@example.com"}}`), DefaultsFor("House of Companies"))
	require.NoError(t, err)

	require.Equal(t, "jane@example.com", form.Recipient)
	require.Equal(t, "N/A", form.Phone)
	require.Equal(t, "N/A", form.Country)
	require.Equal(t, "None", form.Expansion)
	require.Equal(t, "None", form.Services)
	require.Equal(t, "None", form.Addons)
	require.Zero(t, form.Total)
	require.Equal(t, "N/A", form.Timeline)
	require.Equal(t, "N/A", form.BusinessStage)
	require.Equal(t, "eBranch", form.Plan)
	require.Equal(t, "N/A", form.EntityType)
	require.Equal(t, "TBD", form.BranchTotalStandalone)
	require.Equal(t, "TBD", form.BranchProcessingTime)
	require.Equal(t, "TBD", form.LTDRegistrationFee)
	require.Equal(t, "TBD", form.TaxIDRegistrationFee)
	require.Equal(t, "Reply to this email to schedule your consultation today!", form.CallToAction)
	require.Equal(t, "House of Companies Team", form.AgentName)
	require.Equal(t, "Customer Success Manager", form.AgentPosition)
	require.Equal(t, "+123-456-7890", form.AgentPhone)
	require.Equal(t, "support@houseofcompanies.io", form.AgentEmail)
}

func TestNormalize_Countries(t *testing.T) {
	t.Parallel()

	d := DefaultsFor("House of Companies")

	form, err := Normalize(decode(t, `{"contact":{"name":"Jane","email":"jane@example.com"},"countries":"Germany"}`), d)
	require.NoError(t, err)
	require.Equal(t, "Germany", form.Country)
	require.Equal(t, "None", form.Expansion)

	form, err = Normalize(decode(t, `{"contact":{"name":"Jane","email":"jane@example.com"},"countries":{"base":"France","expansion":["Spain","Italy"]}}`), d)
	require.NoError(t, err)
	require.Equal(t, "France", form.Country)
	require.Equal(t, "Spain, Italy", form.Expansion)

	form, err = Normalize(decode(t, `{"contact":{"name":"Jane","email":"jane@example.com"},"countries":{"expansion":["<Spain>"]}}`), d)
	require.NoError(t, err)
	require.Equal(t, "N/A", form.Country)
	require.Equal(t, "&lt;Spain&gt;", form.Expansion)
}

func TestNormalize_FinalTotal(t *testing.T) {
	t.Parallel()

	d := DefaultsFor("House of Companies")
	base := `{"contact":{"name":"Jane","email":"jane@example.com"},"finalTotal":%s}`

	for raw, want := range map[string]float64{`"abc"`: 0, `1234.5`: 1234.5, `"99.9"`: 99.9, `null`: 0, `[]`: 0} {
		form, err := Normalize(decode(t, strings.Replace(base, "%s", raw, 1)), d)
		require.NoError(t, err)
		require.InDelta(t, want, form.Total, 1e-9, raw)
	}
}

func TestNormalize_EscapesEveryFreeTextField(t *testing.T) {
	t.Parallel()

	payload := `{
		"contact": {"name": "<n>", "email": "jane@example.com", "phone": "<p>"},
		"countries": {"base": "<c>", "expansion": ["<e>"]},
		"services": ["<s>"], "addons": ["<a>"],
		"timeline": "<t>", "businessStage": "<st>", "plan": "<pl>",
		"branch_total_standalone": "<b1>", "branch_processing_time": "<b2>",
		"ltd_registration_fee": "<l>", "tax_id_registration_fee": "<x>",
		"entity_type": "<et>", "lead_phase_cta": "<cta>",
		"agent_name": "<an>", "agent_position": "<ap>", "agent_phone": "<aph>", "agent_email": "<ae>"
	}`

	form, err := Normalize(decode(t, payload), DefaultsFor("House of Companies"))
	require.NoError(t, err)

	fields := []string{
		form.Name, form.Phone, form.Country, form.Expansion, form.Services, form.Addons,
		form.Timeline, form.BusinessStage, form.Plan, form.BranchTotalStandalone,
		form.BranchProcessingTime, form.LTDRegistrationFee, form.TaxIDRegistrationFee,
		form.EntityType, form.CallToAction, form.AgentName, form.AgentPosition,
		form.AgentPhone, form.AgentEmail,
	}
	for _, f := range fields {
		require.True(t, strings.HasPrefix(f, "&lt;"), f)
		require.False(t, strings.ContainsAny(f, "<>"), f)
	}
}

func TestNormalize_RequiredFields(t *testing.T) {
	t.Parallel()

	d := DefaultsFor("House of Companies")

	_, err := Normalize(nil, d)
	require.ErrorIs(t, err, ErrNoData)

	_, err = Normalize(decode(t, `{"contact":{"name":"  ","email":"jane@example.com"}}`), d)
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = Normalize(decode(t, `{"contact":{"name":"Jane","email":""}}`), d)
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = Normalize(decode(t, `{"contact":{"name":"Jane","email":"not-an-email"}}`), d)
	require.ErrorIs(t, err, ErrInvalidEmail)

	form, err := Normalize(decode(t, `{"contact":{"name":"Jane","email":"  jane@example.com "}}`), d)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", form.Recipient)
}
