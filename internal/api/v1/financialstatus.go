package v1

import (
	"net/http"
	"time"

	"github.com/coachbill/coachbill/internal/api/dto"
	ierr "github.com/coachbill/coachbill/internal/errors"
	"github.com/coachbill/coachbill/internal/logger"
	"github.com/coachbill/coachbill/internal/service"
	"github.com/gin-gonic/gin"
)

type FinancialStatusHandler struct {
	service service.FinancialStatusService
	log     *logger.Logger
}

func NewFinancialStatusHandler(service service.FinancialStatusService, log *logger.Logger) *FinancialStatusHandler {
	return &FinancialStatusHandler{
		service: service,
		log:     log,
	}
}

// GetFinancialStatus renders the computed billing state for a subscription.
// The optional as_of query parameter (YYYY-MM-DD) pins the reference date;
// it defaults to the current UTC date. This is the only place the engine's
// clock is resolved.
func (h *FinancialStatusHandler) GetFinancialStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("subscription ID is required").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := dto.ParseDate(raw)
		if err != nil {
			c.Error(err)
			return
		}
		asOf = parsed
	}

	resp, err := h.service.GetFinancialStatus(c.Request.Context(), id, asOf)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
