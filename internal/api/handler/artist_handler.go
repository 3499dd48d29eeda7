package handler

import (
	"Dotcreator/internal/pkg/response"
	"Dotcreator/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artistSvc service.ArtistService
}

func NewArtistHandler(artistSvc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{
		artistSvc: artistSvc,
	}
}

func (s *ArtistHandler) ListArtists(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		response.Fail(c, response.BadRequest, "参数错误")
		return
	}

	artists, err := s.artistSvc.ListArtists(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, artists)
}

func (s *ArtistHandler) GetArtist(c *gin.Context) {
	username := c.Param("username")
	artist, err := s.artistSvc.GetArtistByUsername(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, artist)
}

func (s *ArtistHandler) GetTrends7Days(c *gin.Context) {
	username := c.Param("username")
	trends, err := s.artistSvc.GetArtistTrends(c.Request.Context(), username, 7)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trends)
}

func (s *ArtistHandler) GetTrends30Days(c *gin.Context) {
	username := c.Param("username")
	trends, err := s.artistSvc.GetArtistTrends(c.Request.Context(), username, 30)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trends)
}
