package models

// CampaignPlatform is the ad network a campaign runs on.
type CampaignPlatform string

const (
	PlatformGoogle    CampaignPlatform = "Google"
	PlatformFacebook  CampaignPlatform = "Facebook"
	PlatformLinkedIn  CampaignPlatform = "LinkedIn"
	PlatformEmail     CampaignPlatform = "Email"
	PlatformInstagram CampaignPlatform = "Instagram"
)

// CampaignStatus is the delivery state of a campaign.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "Active"
	CampaignPaused    CampaignStatus = "Paused"
	CampaignCompleted CampaignStatus = "Completed"
	CampaignDraft     CampaignStatus = "Draft"
)

// Campaign is a marketing spend and performance record.
type Campaign struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Platform            CampaignPlatform `json:"platform"`
	Status              CampaignStatus   `json:"status"`
	Budget              int              `json:"budget"`
	Spent               int              `json:"spent"`
	Clicks              int              `json:"clicks"`
	Conversions         int              `json:"conversions"`
	AIOptimizationScore int              `json:"aiOptimizationScore"`
	ROI                 float64          `json:"roi"`
}
