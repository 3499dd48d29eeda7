package wire

import (
	"Dotcreator/internal/api"
	"Dotcreator/internal/api/config"
	"Dotcreator/internal/api/handler"
	"Dotcreator/internal/job"
	"Dotcreator/internal/pkg/cron"
	"Dotcreator/internal/pkg/es"
	"Dotcreator/internal/pkg/kafka"
	"Dotcreator/internal/pkg/llm"
	"Dotcreator/internal/pkg/media"
	pkgmongo "Dotcreator/internal/pkg/mongo"
	"Dotcreator/internal/pkg/redis"
	"Dotcreator/internal/pkg/twitter"
	"Dotcreator/internal/pkg/webhook"
	"Dotcreator/internal/repository"
	"Dotcreator/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router    *gin.Engine
	DB        *gorm.DB
	CronMgr   *cron.Manager
	Publisher kafka.Publisher
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	artistRepo := repository.NewArtistRepo(db)
	trendRepo := repository.NewArtistTrendRepo(db)
	suggestionRepo := repository.NewSuggestionRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)

	artistService := service.NewArtistService(artistRepo, trendRepo)
	suggestionService := service.NewSuggestionService(suggestionRepo, artistRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	fetcher := twitter.NewClient(cfg.Twitter)
	notifier := webhook.NewDiscordNotifier(cfg.Webhook)
	mirror := media.NewMinioMirror()
	tagger := llm.NewBioTagger()
	esRepo := es.NewArtistRepo()
	jobRuns := pkgmongo.NewJobRunRepo(mongoDB)
	locker := redis.NewJobLocker()

	var publisher kafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		var err error
		publisher, err = kafka.NewSyncPublisher(cfg.Kafka)
		if err != nil {
			return nil, err
		}
	}

	refreshJob := job.NewArtistRefreshJob(
		artistRepo, trendRepo, analyticsRepo,
		fetcher, notifier, mirror, publisher, esRepo, jobRuns, locker,
	)
	promoteJob := job.NewSuggestionPromoteJob(
		suggestionRepo, artistRepo, trendRepo, analyticsRepo,
		fetcher, notifier, mirror, tagger, publisher, esRepo, jobRuns, locker,
	)
	cronMgr := cron.NewCronManager(refreshJob, promoteJob, cfg.Jobs)

	handlers := &api.HandlersGroup{
		ArtistHandler:     handler.NewArtistHandler(artistService),
		SuggestionHandler: handler.NewSuggestionHandler(suggestionService),
		AnalyticsHandler:  handler.NewAnalyticsHandler(analyticsService, jobRuns),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router:    router,
		DB:        db,
		CronMgr:   cronMgr,
		Publisher: publisher,
	}, nil
}
