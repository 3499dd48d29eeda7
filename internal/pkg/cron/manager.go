package cron

import (
	"Dotcreator/internal/api/config"
	"Dotcreator/internal/job"
	"fmt"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	refreshJob *job.ArtistRefreshJob
	promoteJob *job.SuggestionPromoteJob
	jobsCfg    config.JobsConfig
}

func NewCronManager(refreshJob *job.ArtistRefreshJob, promoteJob *job.SuggestionPromoteJob, jobsCfg config.JobsConfig) *Manager {
	return &Manager{
		engine:     cron.New(),
		refreshJob: refreshJob,
		promoteJob: promoteJob,
		jobsCfg:    jobsCfg,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(intervalSpec(s.jobsCfg.Refresh), s.refreshJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(intervalSpec(s.jobsCfg.Promote), s.promoteJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()

	// 配置要求的任务在启动时先跑一轮
	if s.jobsCfg.Refresh.RunOnStart {
		go s.refreshJob.Run()
	}
	if s.jobsCfg.Promote.RunOnStart {
		go s.promoteJob.Run()
	}
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}

func intervalSpec(cfg config.JobConfig) string {
	hours := cfg.IntervalHours
	if hours <= 0 {
		hours = 24
	}
	return fmt.Sprintf("@every %dh", hours)
}
