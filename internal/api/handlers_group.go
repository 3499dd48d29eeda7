package api

import "Dotcreator/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	ArtistHandler     *handler.ArtistHandler
	SuggestionHandler *handler.SuggestionHandler
	AnalyticsHandler  *handler.AnalyticsHandler
}
