package llm

import (
	"fmt"
	"strings"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// OutreachSystemPrompt is the system prompt for drafting lead outreach.
const OutreachSystemPrompt = `You are an admissions outreach assistant for an education CRM.

Write a short, personalized follow-up email for the lead described by the user.
- Address the lead by first name
- Reference the program they are interested in
- Lean on their tags to choose the angle
- At most 120 words, no subject line, no placeholders`

// BuildOutreachPrompt describes a lead for OutreachSystemPrompt.
func BuildOutreachPrompt(lead models.Lead) string {
	tags := "none"
	if len(lead.Tags) > 0 {
		tags = strings.Join(lead.Tags, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Program: %s\n", lead.Company)
	fmt.Fprintf(&b, "Source: %s\n", lead.Source)
	fmt.Fprintf(&b, "Stage: %s\n", lead.Stage)
	fmt.Fprintf(&b, "Tags: %s\n", tags)
	if lead.NextBestAction != "" {
		fmt.Fprintf(&b, "Suggested next action: %s\n", lead.NextBestAction)
	}
	return b.String()
}
