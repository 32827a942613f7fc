package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"items-api/internal/models"
	"items-api/internal/services"
	"items-api/pkg/lambda"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

func createRequest(fields map[string]interface{}) *services.CreateItemRequest {
	req := &services.CreateItemRequest{Fields: fields}
	if name, ok := fields[models.FieldName].(string); ok {
		req.Name = name
	}
	return req
}

// HandleCreate handles POST /items for Lambda invocations.
func (h *ItemHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	fields, err := decodeObject(req.Body)
	if err != nil {
		return NewErrorResponse(http.StatusBadRequest, err), nil
	}

	item, err := h.itemService.CreateItem(ctx, createRequest(fields))
	if err != nil {
		if isValidationError(err) {
			return NewErrorResponse(http.StatusBadRequest, err), nil
		}
		return NewErrorResponse(http.StatusInternalServerError, err), nil
	}

	return NewResponse(http.StatusCreated, ItemBody{OK: true, Item: item}), nil
}

// HandleGet handles GET /items/{id} for Lambda invocations.
func (h *ItemHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return NewErrorResponse(http.StatusBadRequest, ErrMissingID), nil
	}

	item, err := h.itemService.GetItem(ctx, id)
	if err != nil {
		if isNotFoundError(err) {
			return NewErrorResponse(http.StatusNotFound, err), nil
		}
		return NewErrorResponse(http.StatusInternalServerError, err), nil
	}

	return NewResponse(http.StatusOK, ItemBody{OK: true, Item: item}), nil
}

// HandleUpdate handles PUT /items/{id} for Lambda invocations.
func (h *ItemHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return NewErrorResponse(http.StatusBadRequest, ErrMissingID), nil
	}

	fields, err := decodeObject(req.Body)
	if err != nil {
		return NewErrorResponse(http.StatusBadRequest, err), nil
	}

	item, err := h.itemService.UpdateItem(ctx, id, fields)
	if err != nil {
		switch {
		case isValidationError(err):
			return NewErrorResponse(http.StatusBadRequest, err), nil
		case isNotFoundError(err):
			return NewErrorResponse(http.StatusNotFound, err), nil
		default:
			return NewErrorResponse(http.StatusInternalServerError, err), nil
		}
	}

	return NewResponse(http.StatusOK, ItemBody{OK: true, Item: item}), nil
}

// HandleDelete handles DELETE /items/{id} for Lambda invocations.
func (h *ItemHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParams["id"]
	if id == "" {
		return NewErrorResponse(http.StatusBadRequest, ErrMissingID), nil
	}

	if err := h.itemService.DeleteItem(ctx, id); err != nil {
		if isNotFoundError(err) {
			return NewErrorResponse(http.StatusNotFound, err), nil
		}
		return NewErrorResponse(http.StatusInternalServerError, err), nil
	}

	return NewResponse(http.StatusNoContent, StatusBody{OK: true}), nil
}

// HandleList handles GET /items for Lambda invocations.
func (h *ItemHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	result, err := h.itemService.ListItems(ctx)
	if err != nil {
		return NewErrorResponse(http.StatusInternalServerError, err), nil
	}

	return NewResponse(http.StatusOK, ListBody{OK: true, Count: result.Count, Items: result.Items}), nil
}

// @Summary Create a new item
// @Description Create a new item with a name and arbitrary additional fields
// @Tags items
// @Accept json
// @Produce json
// @Param item body map[string]interface{} true "Item fields; name is required"
// @Success 201 {object} ItemBody
// @Failure 400 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	body, _ := c.GetRawData()
	fields, err := decodeObject(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), createRequest(fields))
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ItemBody{OK: true, Item: item})
}

// @Summary Get an item
// @Description Get an item by its primary key
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ItemBody
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: ErrMissingID.Error()})
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorBody{OK: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ItemBody{OK: true, Item: item})
}

// @Summary Update an item
// @Description Apply a partial update; pk and createdAt are silently ignored
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body map[string]interface{} true "Fields to update"
// @Success 200 {object} ItemBody
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: ErrMissingID.Error()})
		return
	}

	body, _ := c.GetRawData()
	fields, err := decodeObject(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), id, fields)
	if err != nil {
		switch {
		case isValidationError(err):
			c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: err.Error()})
		case isNotFoundError(err):
			c.JSON(http.StatusNotFound, ErrorBody{OK: false, Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorBody{OK: false, Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ItemBody{OK: true, Item: item})
}

// @Summary Delete an item
// @Description Delete an item by its primary key
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 204 {object} StatusBody
// @Failure 400 {object} ErrorBody
// @Failure 404 {object} ErrorBody
// @Failure 500 {object} ErrorBody
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorBody{OK: false, Error: ErrMissingID.Error()})
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorBody{OK: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, StatusBody{OK: true})
}

// @Summary List items
// @Description List up to 100 items in unspecified order
// @Tags items
// @Accept json
// @Produce json
// @Success 200 {object} ListBody
// @Failure 500 {object} ErrorBody
// @Router /items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	result, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorBody{OK: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ListBody{OK: true, Count: result.Count, Items: result.Items})
}
