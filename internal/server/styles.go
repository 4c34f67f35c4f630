package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListStyles(c *gin.Context) {
	styles, err := s.catalogSvc.ListActiveStyles(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, styles)
}
