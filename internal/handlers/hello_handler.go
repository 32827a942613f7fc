package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"items-api/internal/models"
	"items-api/internal/services"
	"items-api/pkg/lambda"
)

// HelloHandler handles the store connectivity check
type HelloHandler struct {
	itemService services.ItemService
}

// NewHelloHandler creates a new hello handler
func NewHelloHandler(itemService services.ItemService) *HelloHandler {
	return &HelloHandler{
		itemService: itemService,
	}
}

// HandleHello handles GET /hello for Lambda invocations. The check writes
// its fixed-key record unconditionally, so it succeeds whether or not the
// record already exists.
func (h *HelloHandler) HandleHello(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if err := h.itemService.CheckConnectivity(ctx); err != nil {
		return NewErrorResponse(http.StatusInternalServerError, err), nil
	}

	return NewResponse(http.StatusOK, HelloBody{
		OK:        true,
		Message:   "item service is reachable",
		Timestamp: models.Timestamp(time.Now()),
	}), nil
}

// @Summary Connectivity check
// @Description Verify the backing store is reachable
// @Tags hello
// @Produce json
// @Success 200 {object} HelloBody
// @Failure 500 {object} ErrorBody
// @Router /hello [get]
func (h *HelloHandler) Hello(c *gin.Context) {
	if err := h.itemService.CheckConnectivity(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, HelloBody{
		OK:        true,
		Message:   "item service is reachable",
		Timestamp: models.Timestamp(time.Now()),
	})
}
