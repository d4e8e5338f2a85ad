package models

import (
	"slices"
	"time"
)

// DealStage is a lead's position in the admissions pipeline.
type DealStage string

const (
	StageNewLead       DealStage = "New Lead"
	StageAINurturing   DealStage = "AI Nurturing"
	StageDemoScheduled DealStage = "Demo Scheduled"
	StageProposalSent  DealStage = "Proposal Sent"
	StageNegotiation   DealStage = "Negotiation"
	StageClosedWon     DealStage = "Closed Won"
	StageClosedLost    DealStage = "Closed Lost"
)

var dealStages = []DealStage{
	StageNewLead,
	StageAINurturing,
	StageDemoScheduled,
	StageProposalSent,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// AllDealStages returns the pipeline stages in board order.
func AllDealStages() []DealStage {
	return slices.Clone(dealStages)
}

// IsValid reports whether s is one of the fixed pipeline stages.
func (s DealStage) IsValid() bool {
	return slices.Contains(dealStages, s)
}

// LeadStatus is the coarse funnel classification of a lead.
type LeadStatus string

const (
	StatusVisitor     LeadStatus = "Visitor"
	StatusLead        LeadStatus = "Lead"
	StatusMQL         LeadStatus = "MQL"
	StatusSQL         LeadStatus = "SQL"
	StatusOpportunity LeadStatus = "Opportunity"
	StatusWon         LeadStatus = "Won"
	StatusLost        LeadStatus = "Lost"
)

// IsValid reports whether s is a known funnel status.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusVisitor, StatusLead, StatusMQL, StatusSQL, StatusOpportunity, StatusWon, StatusLost:
		return true
	}
	return false
}

// LeadSource is the acquisition channel of a lead.
type LeadSource string

const (
	SourceFacebookAds LeadSource = "Facebook Ads"
	SourceGoogleAds   LeadSource = "Google Ads"
	SourceInstagram   LeadSource = "Instagram"
	SourceWebsite     LeadSource = "Website"
	SourceReferral    LeadSource = "Referral"
	SourceManual      LeadSource = "Manual"
	SourceLinkedIn    LeadSource = "LinkedIn"
	SourceTikTok      LeadSource = "TikTok"
)

var leadSources = []LeadSource{
	SourceFacebookAds,
	SourceGoogleAds,
	SourceInstagram,
	SourceWebsite,
	SourceReferral,
	SourceManual,
	SourceLinkedIn,
	SourceTikTok,
}

// AllLeadSources returns every acquisition channel.
func AllLeadSources() []LeadSource {
	return slices.Clone(leadSources)
}

// IsValid reports whether s is a known acquisition channel.
func (s LeadSource) IsValid() bool {
	return slices.Contains(leadSources, s)
}

// Priority ranks how urgently a lead should be worked.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Lead is a prospective applicant tracked through the pipeline.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Company         string     `json:"company"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Source          LeadSource `json:"source"`
	Campaign        string     `json:"campaign,omitempty"`
	Tags            []string   `json:"tags"`
	Score           int        `json:"score"`
	AIScore         int        `json:"aiScore"`
	PredictedLTV    int        `json:"predictedLTV"`
	NextBestAction  string     `json:"nextBestAction"`
	OwnerID         string     `json:"ownerId"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastInteraction time.Time  `json:"lastInteraction"`
	Status          LeadStatus `json:"status"`
	DealValue       int        `json:"dealValue"`
	Stage           DealStage  `json:"stage"`
	Priority        Priority   `json:"priority"`
	NextFollowUp    *string    `json:"nextFollowUp,omitempty"`
}

// Clone returns a copy of l that shares no mutable state with it.
func (l Lead) Clone() Lead {
	l.Tags = slices.Clone(l.Tags)
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if l.NextFollowUp != nil {
		v := *l.NextFollowUp
		l.NextFollowUp = &v
	}
	return l
}

// LeadUpdate is a partial update of a lead. Nil fields are left untouched.
type LeadUpdate struct {
	Name           *string     `json:"name,omitempty"`
	Company        *string     `json:"company,omitempty"`
	Email          *string     `json:"email,omitempty"`
	Phone          *string     `json:"phone,omitempty"`
	Source         *LeadSource `json:"source,omitempty"`
	Campaign       *string     `json:"campaign,omitempty"`
	Tags           []string    `json:"tags,omitempty"`
	Score          *int        `json:"score,omitempty" validate:"omitempty,min=0,max=100"`
	AIScore        *int        `json:"aiScore,omitempty" validate:"omitempty,min=0,max=100"`
	PredictedLTV   *int        `json:"predictedLTV,omitempty"`
	NextBestAction *string     `json:"nextBestAction,omitempty"`
	OwnerID        *string     `json:"ownerId,omitempty"`
	Status         *LeadStatus `json:"status,omitempty"`
	DealValue      *int        `json:"dealValue,omitempty"`
	Priority       *Priority   `json:"priority,omitempty"`
	NextFollowUp   *string     `json:"nextFollowUp,omitempty"`
}

// Apply copies every non-nil field of u onto l.
func (u LeadUpdate) Apply(l *Lead) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Company != nil {
		l.Company = *u.Company
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.Source != nil {
		l.Source = *u.Source
	}
	if u.Campaign != nil {
		l.Campaign = *u.Campaign
	}
	if u.Tags != nil {
		l.Tags = slices.Clone(u.Tags)
	}
	if u.Score != nil {
		l.Score = *u.Score
	}
	if u.AIScore != nil {
		l.AIScore = *u.AIScore
	}
	if u.PredictedLTV != nil {
		l.PredictedLTV = *u.PredictedLTV
	}
	if u.NextBestAction != nil {
		l.NextBestAction = *u.NextBestAction
	}
	if u.OwnerID != nil {
		l.OwnerID = *u.OwnerID
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.DealValue != nil {
		l.DealValue = *u.DealValue
	}
	if u.Priority != nil {
		l.Priority = *u.Priority
	}
	if u.NextFollowUp != nil {
		v := *u.NextFollowUp
		l.NextFollowUp = &v
	}
}

// IsEmpty reports whether the update would change nothing.
func (u LeadUpdate) IsEmpty() bool {
	return u.Name == nil && u.Company == nil && u.Email == nil && u.Phone == nil &&
		u.Source == nil && u.Campaign == nil && u.Tags == nil && u.Score == nil &&
		u.AIScore == nil && u.PredictedLTV == nil && u.NextBestAction == nil &&
		u.OwnerID == nil && u.Status == nil && u.DealValue == nil && u.Priority == nil &&
		u.NextFollowUp == nil
}
