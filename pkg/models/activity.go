package models

import "time"

// ActivityType classifies a timeline event.
type ActivityType string

const (
	ActivityCall                ActivityType = "Call"
	ActivityEmail               ActivityType = "Email"
	ActivityMeeting             ActivityType = "Meeting"
	ActivityNote                ActivityType = "Note"
	ActivityStatusChange        ActivityType = "Status Change"
	ActivityAIInsight           ActivityType = "AI Insight"
	ActivityCampaignInteraction ActivityType = "Campaign Interaction"
)

// IsValid reports whether t is a known activity type.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityCall, ActivityEmail, ActivityMeeting, ActivityNote,
		ActivityStatusChange, ActivityAIInsight, ActivityCampaignInteraction:
		return true
	}
	return false
}

// Activity is an immutable timestamped event attached to a lead.
type Activity struct {
	ID          string       `json:"id"`
	LeadID      string       `json:"leadId"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	UserID      string       `json:"userId"`
}
