package jobs

import (
	"context"

	"github.com/jordanlanch/nexuscrm/pkg/analytics"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Default schedules.
const (
	DefaultFollowUpSchedule = "*/15 * * * *"
	DefaultStatsSchedule    = "0 4 * * *"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron      *cron.Cron
	monitor   *FollowUpMonitor
	analytics *analytics.Service
	log       logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(monitor *FollowUpMonitor, analyticsService *analytics.Service, log logger.Logger) *CronManager {
	return &CronManager{
		cron:      cron.New(),
		monitor:   monitor,
		analytics: analyticsService,
		log:       log,
	}
}

// SetupJobs registers the follow-up check and the pipeline statistics log.
// Empty schedules fall back to the defaults.
func (cm *CronManager) SetupJobs(followUpSchedule, statsSchedule string) error {
	if followUpSchedule == "" {
		followUpSchedule = DefaultFollowUpSchedule
	}
	if statsSchedule == "" {
		statsSchedule = DefaultStatsSchedule
	}

	if _, err := cm.cron.AddFunc(followUpSchedule, cm.runFollowUpCheck); err != nil {
		return err
	}
	if _, err := cm.cron.AddFunc(statsSchedule, cm.runStats); err != nil {
		return err
	}

	cm.log.Info("cron jobs configured",
		"followup_schedule", followUpSchedule,
		"stats_schedule", statsSchedule,
	)
	return nil
}

func (cm *CronManager) runFollowUpCheck() {
	cm.monitor.Check()
}

func (cm *CronManager) runStats() {
	sum := cm.analytics.Dashboard()
	cm.log.Info("pipeline statistics",
		"total_leads", sum.TotalLeads,
		"active_deals", sum.ActiveDeals,
		"revenue", sum.Revenue,
		"avg_ai_score", sum.AvgAIScore,
		"conversion_rate", sum.ConversionRate,
	)
}

// Start starts the cron scheduler and runs the follow-up check once.
func (cm *CronManager) Start() {
	cm.log.Info("starting cron scheduler")
	cm.runFollowUpCheck()
	cm.cron.Start()
}

// Stop stops the scheduler. The returned context is done once running jobs
// have finished.
func (cm *CronManager) Stop() context.Context {
	cm.log.Info("stopping cron scheduler")
	return cm.cron.Stop()
}

// Entries returns the number of scheduled jobs.
func (cm *CronManager) Entries() int {
	return len(cm.cron.Entries())
}
