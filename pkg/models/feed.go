package models

import (
	"slices"
	"time"
)

// FeedType classifies a piece of published content.
type FeedType string

const (
	FeedSocialPost  FeedType = "Social Post"
	FeedBlogArticle FeedType = "Blog Article"
	FeedSEOPage     FeedType = "SEO Page"
	FeedAdCreative  FeedType = "Ad Creative"
)

// IsValid reports whether t is a known feed type.
func (t FeedType) IsValid() bool {
	switch t {
	case FeedSocialPost, FeedBlogArticle, FeedSEOPage, FeedAdCreative:
		return true
	}
	return false
}

// FeedPlatform is where a feed item was published.
type FeedPlatform string

const (
	FeedPlatformFacebook  FeedPlatform = "Facebook"
	FeedPlatformLinkedIn  FeedPlatform = "LinkedIn"
	FeedPlatformTwitter   FeedPlatform = "Twitter"
	FeedPlatformInstagram FeedPlatform = "Instagram"
	FeedPlatformWebsite   FeedPlatform = "Website"
	FeedPlatformMedium    FeedPlatform = "Medium"
)

// FeedMetrics holds engagement counters for a feed item.
type FeedMetrics struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// FeedItem is an external content reference optionally linked to leads.
type FeedItem struct {
	ID            string       `json:"id"`
	Type          FeedType     `json:"type"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Platform      FeedPlatform `json:"platform"`
	URL           string       `json:"url"`
	Timestamp     time.Time    `json:"timestamp"`
	Metrics       FeedMetrics  `json:"metrics"`
	LinkedLeadIDs []string     `json:"linkedLeadIds"`
}

// Clone returns a copy of f that shares no mutable state with it.
func (f FeedItem) Clone() FeedItem {
	f.LinkedLeadIDs = slices.Clone(f.LinkedLeadIDs)
	if f.LinkedLeadIDs == nil {
		f.LinkedLeadIDs = []string{}
	}
	return f
}

// Links reports whether leadID appears in the feed's linked leads.
func (f FeedItem) Links(leadID string) bool {
	return slices.Contains(f.LinkedLeadIDs, leadID)
}
