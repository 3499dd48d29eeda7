package handler

import (
	"Dotcreator/internal/api/dto"
	"Dotcreator/internal/pkg/response"
	"Dotcreator/internal/service"

	"github.com/gin-gonic/gin"
)

type SuggestionHandler struct {
	suggestionSvc service.SuggestionService
}

func NewSuggestionHandler(suggestionSvc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionSvc: suggestionSvc,
	}
}

func (s *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	var req dto.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	suggestion, err := s.suggestionSvc.CreateSuggestion(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, suggestion)
}

func (s *SuggestionHandler) ApproveSuggestion(c *gin.Context) {
	var req dto.ReviewSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.suggestionSvc.ApproveSuggestion(c.Request.Context(), req.RequestID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *SuggestionHandler) RejectSuggestion(c *gin.Context) {
	var req dto.ReviewSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.suggestionSvc.RejectSuggestion(c.Request.Context(), req.RequestID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
