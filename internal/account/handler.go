package account

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/account", h.purge)
}

func (h *Handler) purge(c *gin.Context) {
	ownerID := middleware.UserIDFromContext(c)

	result, err := h.Svc.Purge(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to purge account data", nil)
		return
	}

	respond.JSON(c, http.StatusOK, result)
}
