// Package export renders lead lists and reports as CSV or Excel files.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/analytics"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/phone"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts csv, xlsx or excel, case-insensitively. An empty
// string selects CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be csv or xlsx", s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName builds a timestamped download name.
func (f Format) FileName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format("20060102-150405"), f)
}

// Service renders exports.
type Service struct {
	region string
}

// NewService creates a new export service. region is the default phone
// region used when formatting numbers.
func NewService(region string) *Service {
	return &Service{region: region}
}

// LeadsTable lays out leads with their owner names resolved.
func (s *Service) LeadsTable(leads []models.Lead, users []models.User) Table {
	owners := make(map[string]string, len(users))
	for _, u := range users {
		owners[u.ID] = u.Name
	}

	t := Table{
		Sheet: "Leads",
		Header: []string{
			"ID", "Name", "Program", "Email", "Phone", "Source", "Campaign", "Stage",
			"Status", "Priority", "Score", "AI Score", "Deal Value", "Predicted LTV",
			"Owner", "Tags", "Created At", "Last Interaction", "Next Follow-Up",
		},
		Rows: make([][]any, 0, len(leads)),
	}

	for _, l := range leads {
		owner, ok := owners[l.OwnerID]
		if !ok {
			owner = l.OwnerID
		}
		followUp := ""
		if l.NextFollowUp != nil {
			followUp = *l.NextFollowUp
		}
		t.Rows = append(t.Rows, []any{
			l.ID, l.Name, l.Company, l.Email, phone.Display(l.Phone, s.region),
			string(l.Source), l.Campaign, string(l.Stage), string(l.Status), string(l.Priority),
			l.Score, l.AIScore, l.DealValue, l.PredictedLTV,
			owner, strings.Join(l.Tags, ", "),
			l.CreatedAt.Format(time.DateTime), l.LastInteraction.Format(time.DateTime), followUp,
		})
	}
	return t
}

// TeamTable lays out the sales team report.
func (s *Service) TeamTable(members []analytics.TeamMember) Table {
	t := Table{
		Sheet:  "Team",
		Header: []string{"User ID", "Name", "Role", "Leads", "Deals Won", "Revenue", "Pipeline Value", "Conversion %"},
		Rows:   make([][]any, 0, len(members)),
	}
	for _, m := range members {
		t.Rows = append(t.Rows, []any{
			m.UserID, m.Name, string(m.Role), m.Leads, m.DealsWon, m.Revenue, m.PipelineValue, m.ConversionRate,
		})
	}
	return t
}

// WriteLeads renders leads to w.
func (s *Service) WriteLeads(w io.Writer, format Format, leads []models.Lead, users []models.User) error {
	return s.LeadsTable(leads, users).Write(w, format)
}

// WriteTeam renders the team report to w.
func (s *Service) WriteTeam(w io.Writer, format Format, members []analytics.TeamMember) error {
	return s.TeamTable(members).Write(w, format)
}
