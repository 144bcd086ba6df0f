package service

import (
	"html"
	"regexp"
	"strings"

	"github.com/houseofcompanies/leadmail/internal/model"
)

// Placeholder values for absent fields.
const (
	notAvailable = "N/A"
	none         = "None"
	tbd          = "TBD"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Escape makes value safe to insert into HTML text and attribute values.
// Blank input yields fallback, which is returned as is.
func Escape(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return html.EscapeString(value)
}

// escapeList escapes each element and joins them with ", ".
func escapeList(values model.TextList, fallback string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s := Escape(string(v), ""); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}

// ValidEmail reports whether addr looks like local@domain.tld.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Defaults holds the signature values used when the payload omits them.
type Defaults struct {
	AgentName     string
	AgentPosition string
	AgentPhone    string
	AgentEmail    string
	Plan          string
	CallToAction  string
}

// DefaultsFor returns the stock defaults for a company name.
func DefaultsFor(companyName string) Defaults {
	return Defaults{
		AgentName:     companyName + " Team",
		AgentPosition: "Customer Success Manager",
		AgentPhone:    "+123-456-7890",
		AgentEmail:    "support@houseofcompanies.io",
		Plan:          "eBranch",
		CallToAction:  "Reply to this email to schedule your consultation today!",
	}
}

// Normalize validates req and returns a LeadForm with every display field
// escaped and defaulted.
func Normalize(req *model.LeadRequest, d Defaults) (model.LeadForm, error) {
	if req == nil {
		return model.LeadForm{}, ErrNoData
	}

	name := strings.TrimSpace(req.Contact.Name.String())
	addr := strings.TrimSpace(req.Contact.Email.String())
	if name == "" || addr == "" {
		return model.LeadForm{}, ErrMissingFields
	}
	if !ValidEmail(addr) {
		return model.LeadForm{}, ErrInvalidEmail
	}

	return model.LeadForm{
		Recipient: addr,

		Name:  Escape(name, ""),
		Email: Escape(addr, ""),
		Phone: Escape(req.Contact.Phone.String(), notAvailable),

		Country:   Escape(req.Countries.Base.String(), notAvailable),
		Expansion: escapeList(req.Countries.Expansion, none),
		Services:  escapeList(req.Services, none),
		Addons:    escapeList(req.Addons, none),
		Total:     req.FinalTotal.Float64(),

		Timeline:      Escape(req.Timeline.String(), notAvailable),
		BusinessStage: Escape(req.BusinessStage.String(), notAvailable),
		Plan:          Escape(req.Plan.String(), Escape(d.Plan, "")),
		EntityType:    Escape(req.EntityType.String(), notAvailable),
		CallToAction:  Escape(req.LeadPhaseCTA.String(), Escape(d.CallToAction, "")),

		BranchTotalStandalone: Escape(req.BranchTotalStandalone.String(), tbd),
		BranchProcessingTime:  Escape(req.BranchProcessingTime.String(), tbd),
		LTDRegistrationFee:    Escape(req.LTDRegistrationFee.String(), tbd),
		TaxIDRegistrationFee:  Escape(req.TaxIDRegistrationFee.String(), tbd),

		AgentName:     Escape(req.AgentName.String(), Escape(d.AgentName, "")),
		AgentPosition: Escape(req.AgentPosition.String(), Escape(d.AgentPosition, "")),
		AgentPhone:    Escape(req.AgentPhone.String(), Escape(d.AgentPhone, "")),
		AgentEmail:    Escape(req.AgentEmail.String(), Escape(d.AgentEmail, "")),
	}, nil
}
