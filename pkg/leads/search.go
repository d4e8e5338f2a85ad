package leads

import (
	"strings"

	"github.com/jordanlanch/nexuscrm/pkg/models"
	"golang.org/x/text/cases"
)

// Filter narrows a lead list. Zero values disable a criterion.
type Filter struct {
	Query  string           `query:"q"`
	Stage  models.DealStage `query:"stage"`
	FeedID string           `query:"feed_id"`
}

// Search returns the leads matching f, in their original order. Query is a
// case-insensitive substring match on name, company or email. FeedID keeps
// only leads linked from that feed; an unknown feed disables the criterion.
func Search(all []models.Lead, feeds []models.FeedItem, f Filter) []models.Lead {
	fold := cases.Fold()
	query := fold.String(f.Query)

	var linked map[string]bool
	if f.FeedID != "" {
		for _, feed := range feeds {
			if feed.ID == f.FeedID {
				linked = make(map[string]bool, len(feed.LinkedLeadIDs))
				for _, id := range feed.LinkedLeadIDs {
					linked[id] = true
				}
				break
			}
		}
	}

	out := make([]models.Lead, 0, len(all))
	for _, l := range all {
		if f.Stage != "" && l.Stage != f.Stage {
			continue
		}
		if linked != nil && !linked[l.ID] {
			continue
		}
		if query != "" &&
			!strings.Contains(fold.String(l.Name), query) &&
			!strings.Contains(fold.String(l.Company), query) &&
			!strings.Contains(fold.String(l.Email), query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ByStage returns the leads currently in stage.
func ByStage(all []models.Lead, stage models.DealStage) []models.Lead {
	return Search(all, nil, Filter{Stage: stage})
}
