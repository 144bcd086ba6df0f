package email

import (
	"html"
	"strings"

	"github.com/houseofcompanies/leadmail/internal/model"
)

// Brand is the company identity printed in the signature block.
type Brand struct {
	CompanyName string
	Website     string
}

// websiteLabel strips the scheme for display, "https://www.x.io" -> "www.x.io".
func (b Brand) websiteLabel() string {
	label := strings.TrimPrefix(b.Website, "https://")
	label = strings.TrimPrefix(label, "http://")
	return strings.TrimSuffix(label, "/")
}

// LeadEmail renders the complete message for a normalized lead.
func LeadEmail(form model.LeadForm, brand Brand) Message {
	return Message{
		To:       form.Recipient,
		Subject:  LeadEmailSubject(form),
		HTMLBody: LeadEmailHTML(form, brand),
		TextBody: LeadEmailText(form, brand),
	}
}

// LeadEmailSubject returns the subject line. Fields in form are HTML
// escaped, so they are unescaped here and CR/LF removed.
func LeadEmailSubject(form model.LeadForm) string {
	subject := "Your " + html.UnescapeString(form.Country) + " Business Expansion: Compliance-to-Scale Solutions"
	return strings.NewReplacer("\r", "", "\n", " ").Replace(subject)
}

const leadHTMLTemplate = `<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
    <div style="max-width: 600px; margin: auto; background-color: #fff; padding: 30px; border: 1px solid #ddd; border-radius: 10px;">
      <h2 style="color: #007BFF;">Your {{country}} Business Expansion: Compliance-to-Scale Solutions</h2>
      <p>Dear {{name}},</p>
      <p>Thank you for your interest in establishing a business presence in {{country}}. As entrepreneurs ourselves, we understand that navigating foreign compliance requirements can be challenging, which is why we’ve created our Compliance-to-Scale solutions to simplify the process.</p>
      <h3>Our {{plan}} Plan: €1,995/year (or €199/month)</h3>
      <p>The {{plan}} Plan provides entrepreneurs with everything needed to maintain a fully compliant {{country}} business presence:</p>
      <ul>
        <li>Professional {{country}} business address with mail handling</li>
        <li>Complete branch/entity management and compliance monitoring</li>
        <li>Tax registration and ongoing compliance handling</li>
        <li>Financial reporting and document processing systems</li>
        <li>All preparation and filing of required documentation</li>
      </ul>
      <p>Through our specialized portal, you’ll have instant access to your compliance calendar, document vault, and real-time status tracking for all filings.</p>
      <h3>Optional Services</h3>
      <p>Based on your specific needs, you may require these additional services:</p>
      <ul>
        <li><strong>{{country}} Branch Registration</strong>: €{{branch_total_standalone}} (One-time, {{branch_processing_time}})</li>
        <li><strong>{{entity_type}} Company Formation</strong>: €{{ltd_registration_fee}}</li>
        <li><strong>{{country}} Tax ID Registration</strong>: €{{tax_id_registration_fee}}</li>
      </ul>
      <h3>Your Selections</h3>
      <table style="width: 100%; border-collapse: separate; border-spacing: 10px;">
        <tr><td><strong>💼 Business Stage:</strong></td><td>{{stage}}</td></tr>
        <tr><td><strong>🌍 Country:</strong></td><td>{{country}}</td></tr>
        <tr><td><strong>🌐 Expansion Regions:</strong></td><td>{{expansion}}</td></tr>
        <tr><td><strong>⏱ Timeline:</strong></td><td>{{timeline}}</td></tr>
        <tr><td><strong>🛠 Services:</strong></td><td>{{services}}</td></tr>
        <tr><td><strong>➕ Add-ons:</strong></td><td>{{addons}}</td></tr>
        <tr><td style="color: #28a745;"><strong>💶 Total Estimated Cost:</strong></td><td style="color: #28a745;"><strong>{{total}}</strong></td></tr>
      </table>
      <h3>Next Steps</h3>
      <p>How does an entrepreneur move forward from here?</p>
      <ol>
        <li><strong>Schedule a Consultation</strong>: Book a 15-minute call to discuss your specific requirements.</li>
        <li><strong>Receive Your Personalized Plan</strong>: We’ll outline exactly which services you need based on your business model.</li>
        <li><strong>Begin Your {{country}} Expansion</strong>: We’ll handle all the complex compliance while you focus on business growth.</li>
      </ol>
      <p><strong>Call to Action</strong>: {{cta}}</p>
      <p><strong>Contact Information</strong></p>
      <p>Best regards,<br>
         {{agent_name}}<br>
         {{agent_position}}<br>
         {{company}}<br>
         Tel: {{agent_phone}}<br>
         Email: <a href="mailto:{{agent_email}}">{{agent_email}}</a><br>
         Website: <a href="{{website}}">{{website_label}}</a>
      </p>
      <p style="font-size: 12px; color: #888; border-top: 1px solid #ddd; margin-top: 30px; padding-top: 10px;">
        This message was generated by {{company}}. If you didn’t request this, please ignore.
      </p>
    </div>
  </body>
</html>
`

const leadTextTemplate = `Your {{country}} Business Expansion: Compliance-to-Scale Solutions

Dear {{name}},

Thank you for your interest in establishing a business presence in {{country}}.

Our {{plan}} Plan: €1,995/year (or €199/month)

Optional services:
- {{country}} Branch Registration: €{{branch_total_standalone}} (One-time, {{branch_processing_time}})
- {{entity_type}} Company Formation: €{{ltd_registration_fee}}
- {{country}} Tax ID Registration: €{{tax_id_registration_fee}}

Your selections:
- Business Stage: {{stage}}
- Country: {{country}}
- Expansion Regions: {{expansion}}
- Timeline: {{timeline}}
- Services: {{services}}
- Add-ons: {{addons}}
- Total Estimated Cost: {{total}}

Next steps:
1. Schedule a Consultation: Book a 15-minute call to discuss your specific requirements.
2. Receive Your Personalized Plan: We'll outline exactly which services you need based on your business model.
3. Begin Your {{country}} Expansion: We'll handle all the complex compliance while you focus on business growth.

{{cta}}

Best regards,
{{agent_name}}
{{agent_position}}
{{company}}
Tel: {{agent_phone}}
Email: {{agent_email}}
Website: {{website_label}}
`

// LeadEmailHTML returns the HTML body. Form fields are inserted as is and
// must already be escaped.
func LeadEmailHTML(form model.LeadForm, brand Brand) string {
	return leadReplacer(form, brand, html.EscapeString).Replace(leadHTMLTemplate)
}

// LeadEmailText returns the plain-text body.
func LeadEmailText(form model.LeadForm, brand Brand) string {
	return leadReplacer(unescapeForm(form), brand, func(s string) string { return s }).Replace(leadTextTemplate)
}

// leadReplacer builds the placeholder substitutions. Replacement happens in
// a single pass, so placeholder text inside a field is never expanded.
func leadReplacer(form model.LeadForm, brand Brand, brandEscape func(string) string) *strings.Replacer {
	return strings.NewReplacer(
		"{{name}}", form.Name,
		"{{country}}", form.Country,
		"{{expansion}}", form.Expansion,
		"{{services}}", form.Services,
		"{{addons}}", form.Addons,
		"{{total}}", FormatEUR(form.Total),
		"{{timeline}}", form.Timeline,
		"{{stage}}", form.BusinessStage,
		"{{plan}}", form.Plan,
		"{{entity_type}}", form.EntityType,
		"{{cta}}", form.CallToAction,
		"{{branch_total_standalone}}", form.BranchTotalStandalone,
		"{{branch_processing_time}}", form.BranchProcessingTime,
		"{{ltd_registration_fee}}", form.LTDRegistrationFee,
		"{{tax_id_registration_fee}}", form.TaxIDRegistrationFee,
		"{{agent_name}}", form.AgentName,
		"{{agent_position}}", form.AgentPosition,
		"{{agent_phone}}", form.AgentPhone,
		"{{agent_email}}", form.AgentEmail,
		"{{company}}", brandEscape(brand.CompanyName),
		"{{website}}", brandEscape(brand.Website),
		"{{website_label}}", brandEscape(brand.websiteLabel()),
	)
}

func unescapeForm(form model.LeadForm) model.LeadForm {
	u := html.UnescapeString
	form.Name = u(form.Name)
	form.Phone = u(form.Phone)
	form.Email = u(form.Email)
	form.Country = u(form.Country)
	form.Expansion = u(form.Expansion)
	form.Services = u(form.Services)
	form.Addons = u(form.Addons)
	form.Timeline = u(form.Timeline)
	form.BusinessStage = u(form.BusinessStage)
	form.Plan = u(form.Plan)
	form.EntityType = u(form.EntityType)
	form.CallToAction = u(form.CallToAction)
	form.BranchTotalStandalone = u(form.BranchTotalStandalone)
	form.BranchProcessingTime = u(form.BranchProcessingTime)
	form.LTDRegistrationFee = u(form.LTDRegistrationFee)
	form.TaxIDRegistrationFee = u(form.TaxIDRegistrationFee)
	form.AgentName = u(form.AgentName)
	form.AgentPosition = u(form.AgentPosition)
	form.AgentPhone = u(form.AgentPhone)
	form.AgentEmail = u(form.AgentEmail)
	return form
}
