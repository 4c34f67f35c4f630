package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ArtistSummary(c *gin.Context) {
	summary, err := s.ledgerSvc.SummarizeArtist(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
