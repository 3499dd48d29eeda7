package dto

import "time"

type AnalyticsPoint struct {
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

type AnalyticsResponse struct {
	Artists     []*AnalyticsPoint `json:"artists"`
	Suggestions []*AnalyticsPoint `json:"suggestions"`
}

type JobRunResponse struct {
	Job        string    `json:"job"`
	TraceID    string    `json:"traceId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
	Error      string    `json:"error,omitempty"`
}
