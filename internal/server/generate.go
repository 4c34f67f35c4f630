package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	generationdomain "github.com/smallbiznis/fairstyle/internal/generation/domain"
)

func (s *Server) Generate(c *gin.Context) {
	var req generationdomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if styleID := strings.TrimSpace(req.StyleID); styleID != "" {
		c.Set("style_id", styleID)
	}

	if s.generateLimiter.Enabled() {
		allowed, err := s.generateLimiter.Allow(c.Request.Context(), req.StyleID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !allowed {
			AbortWithError(c, ErrRateLimited)
			return
		}
	}

	resp, err := s.generationSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
