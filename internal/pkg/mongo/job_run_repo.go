package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRunRepo interface {
	RecordRun(ctx context.Context, run *JobRunDoc) error
	GetRecentRuns(ctx context.Context, job string, limit int64) ([]*JobRunDoc, error)
}

type jobRunRepoImpl struct {
	col *mongo.Collection
}

func NewJobRunRepo(db *mongo.Database) JobRunRepo {
	return &jobRunRepoImpl{
		col: db.Collection("job_runs"),
	}
}

// RecordRun 插入一条运行记录
func (s *jobRunRepoImpl) RecordRun(ctx context.Context, run *JobRunDoc) error {
	_, err := s.col.InsertOne(ctx, run)
	return err
}

// GetRecentRuns 按开始时间倒序获取某任务最近的运行记录
func (s *jobRunRepoImpl) GetRecentRuns(ctx context.Context, job string, limit int64) ([]*JobRunDoc, error) {
	filter := bson.M{"job": job}
	opts := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*JobRunDoc
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
