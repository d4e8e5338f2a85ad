package analytics

import "github.com/jordanlanch/nexuscrm/pkg/models"

// TeamMember is one row of the sales team report.
type TeamMember struct {
	UserID         string      `json:"userId"`
	Name           string      `json:"name"`
	Role           models.Role `json:"role"`
	Leads          int         `json:"leads"`
	DealsWon       int         `json:"dealsWon"`
	Revenue        int         `json:"revenue"`
	PipelineValue  int         `json:"pipelineValue"`
	ConversionRate float64     `json:"conversionRate"`
}

// TeamPerformance reports on every user with a sales role, in user order,
// from the leads they own.
func TeamPerformance(users []models.User, leads []models.Lead) []TeamMember {
	out := make([]TeamMember, 0, len(users))
	index := make(map[string]int, len(users))
	for _, u := range users {
		if !u.Role.IsSales() {
			continue
		}
		index[u.ID] = len(out)
		out = append(out, TeamMember{UserID: u.ID, Name: u.Name, Role: u.Role})
	}

	for _, l := range leads {
		i, ok := index[l.OwnerID]
		if !ok {
			continue
		}
		m := &out[i]
		m.Leads++
		switch l.Stage {
		case models.StageClosedWon:
			m.DealsWon++
			m.Revenue += l.DealValue
		case models.StageClosedLost:
		default:
			m.PipelineValue += l.DealValue
		}
	}

	for i := range out {
		out[i].ConversionRate = percent(float64(out[i].DealsWon), float64(out[i].Leads))
	}
	return out
}
