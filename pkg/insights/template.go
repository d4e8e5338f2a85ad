// Package insights drafts outreach content for leads.
package insights

import (
	"context"
	"fmt"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/models"
)

const fallbackFocus = "their business needs"

var _ domain.ContentSuggester = TemplateSuggester{}

// TemplateSuggester produces a fixed sentence built from the lead's name and
// first tag. It never fails and needs no network.
type TemplateSuggester struct{}

// Suggest implements domain.ContentSuggester.
func (TemplateSuggester) Suggest(ctx context.Context, lead models.Lead) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	focus := fallbackFocus
	if len(lead.Tags) > 0 && lead.Tags[0] != "" {
		focus = lead.Tags[0]
	}
	return fmt.Sprintf("AI generated personalized email draft for %s focusing on %s.", lead.Name, focus), nil
}
