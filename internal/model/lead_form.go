package model

// LeadForm is a validated lead with every display field already escaped for
// HTML output and defaulted.
type LeadForm struct {
	// Recipient is the validated, unescaped address the email is sent to.
	Recipient string

	Name  string
	Email string
	Phone string

	Country   string
	Expansion string
	Services  string
	Addons    string
	Total     float64

	Timeline      string
	BusinessStage string
	Plan          string
	EntityType    string
	CallToAction  string

	BranchTotalStandalone string
	BranchProcessingTime  string
	LTDRegistrationFee    string
	TaxIDRegistrationFee  string

	AgentName     string
	AgentPosition string
	AgentPhone    string
	AgentEmail    string
}
