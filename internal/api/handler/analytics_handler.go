package handler

import (
	"Dotcreator/internal/api/dto"
	"Dotcreator/internal/job"
	"Dotcreator/internal/pkg/mongo"
	"Dotcreator/internal/pkg/response"
	"Dotcreator/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
	jobRuns      mongo.JobRunRepo
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService, jobRuns mongo.JobRunRepo) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		jobRuns:      jobRuns,
	}
}

func (s *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	analytics, err := s.analyticsSvc.GetAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}

func (s *AnalyticsHandler) GetJobRuns(c *gin.Context) {
	jobName := c.Param("job")
	if jobName != job.RefreshJobName && jobName != job.PromoteJobName {
		response.Fail(c, response.NotFound, "任务不存在")
		return
	}
	if s.jobRuns == nil {
		response.Success(c, []*dto.JobRunResponse{})
		return
	}

	runs, err := s.jobRuns.GetRecentRuns(c.Request.Context(), jobName, 20)
	if err != nil {
		response.Error(c, err)
		return
	}

	results := make([]*dto.JobRunResponse, 0, len(runs))
	for _, run := range runs {
		results = append(results, &dto.JobRunResponse{
			Job:        run.Job,
			TraceID:    run.TraceID,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
			Succeeded:  run.Succeeded,
			Failed:     run.Failed,
			Error:      run.Error,
		})
	}
	response.Success(c, results)
}
