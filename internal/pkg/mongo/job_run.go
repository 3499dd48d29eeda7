package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobRunDoc 单次定时任务运行的审计记录
type JobRunDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Job        string             `bson:"job" json:"job"`
	TraceID    string             `bson:"trace_id" json:"traceId"`
	StartedAt  time.Time          `bson:"started_at" json:"startedAt"`
	FinishedAt time.Time          `bson:"finished_at" json:"finishedAt"`
	Succeeded  int                `bson:"succeeded" json:"succeeded"`
	Failed     int                `bson:"failed" json:"failed"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`
}
