// Package seed provides the startup data set: fixed users, campaigns and
// feeds plus a generator for pseudo-random leads.
package seed

import (
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// Users returns the fixed team.
func Users() []models.User {
	return []models.User{
		{ID: "u1", Name: "Alex Admin", Role: models.RoleAdmin, Avatar: "https://i.pravatar.cc/150?u=u1"},
		{ID: "u2", Name: "Sarah Sales", Role: models.RoleSalesManager, Avatar: "https://i.pravatar.cc/150?u=u2"},
		{ID: "u3", Name: "Mike Marketing", Role: models.RoleMarketingManager, Avatar: "https://i.pravatar.cc/150?u=u3"},
		{ID: "u4", Name: "John Exec", Role: models.RoleSalesExecutive, Avatar: "https://i.pravatar.cc/150?u=u4"},
	}
}

// Campaigns returns the fixed campaign set.
func Campaigns() []models.Campaign {
	return []models.Campaign{
		{ID: "c1", Name: "Q1 AI Growth", Platform: models.PlatformGoogle, Status: models.CampaignActive, Budget: 5000, Spent: 2340, Clicks: 1200, Conversions: 85, AIOptimizationScore: 92, ROI: 3.5},
		{ID: "c2", Name: "Retargeting Alpha", Platform: models.PlatformFacebook, Status: models.CampaignActive, Budget: 3000, Spent: 1800, Clicks: 950, Conversions: 45, AIOptimizationScore: 88, ROI: 2.1},
		{ID: "c3", Name: "LinkedIn B2B", Platform: models.PlatformLinkedIn, Status: models.CampaignPaused, Budget: 4000, Spent: 1200, Clicks: 300, Conversions: 12, AIOptimizationScore: 65, ROI: 0.8},
		{ID: "c4", Name: "Insta Lifestyle", Platform: models.PlatformInstagram, Status: models.CampaignActive, Budget: 2500, Spent: 2100, Clicks: 2400, Conversions: 110, AIOptimizationScore: 95, ROI: 4.2},
	}
}

// Feeds returns the fixed content feed, timestamped relative to now.
func Feeds(now time.Time) []models.FeedItem {
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	return []models.FeedItem{
		{
			ID:            "f1",
			Type:          models.FeedSocialPost,
			Title:         "AI in Marketing Trends 2025",
			Content:       "Just released our latest report on how AI is transforming digital marketing. #AI #Marketing #Trends",
			Platform:      models.FeedPlatformLinkedIn,
			URL:           "https://linkedin.com/post/ai-trends",
			Timestamp:     daysAgo(1),
			Metrics:       models.FeedMetrics{Views: 1250, Likes: 85, Shares: 12, Comments: 5},
			LinkedLeadIDs: []string{"l1", "l5"},
		},
		{
			ID:            "f2",
			Type:          models.FeedBlogArticle,
			Title:         "10 Tips for Better ROI",
			Content:       "Maximize your ad spend with these simple optimization techniques.",
			Platform:      models.FeedPlatformWebsite,
			URL:           "https://nexus-crm.com/blog/roi-tips",
			Timestamp:     daysAgo(3),
			Metrics:       models.FeedMetrics{Views: 3400, Likes: 0, Shares: 45, Comments: 8},
			LinkedLeadIDs: []string{"l2"},
		},
		{
			ID:            "f3",
			Type:          models.FeedSocialPost,
			Title:         "Behind the Scenes at Nexus",
			Content:       "Meet the team building the future of CRM.",
			Platform:      models.FeedPlatformInstagram,
			URL:           "https://instagram.com/p/nexus-team",
			Timestamp:     daysAgo(2),
			Metrics:       models.FeedMetrics{Views: 800, Likes: 120, Shares: 5, Comments: 15},
			LinkedLeadIDs: []string{},
		},
		{
			ID:            "f4",
			Type:          models.FeedSEOPage,
			Title:         "Best CRM for Agencies",
			Content:       `Landing page targeting "best crm for digital agencies" keyword.`,
			Platform:      models.FeedPlatformWebsite,
			URL:           "https://nexus-crm.com/best-crm-agencies",
			Timestamp:     daysAgo(10),
			Metrics:       models.FeedMetrics{Views: 5600, Likes: 0, Shares: 0, Comments: 0},
			LinkedLeadIDs: []string{"l3", "l4", "l8"},
		},
	}
}
