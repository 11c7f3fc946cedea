package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/listings-api/internal/api/metrics"
	"github.com/stayhub/listings-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for listing operations.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// List handles GET /v1/listings.
//
// @Summary      List listings with pagination
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        page           query     int     false  "Page number (1-based, default 1)"
// @Param        per_page       query     int     false  "Items per page (default 10, max 100)"
// @Param        property_type  query     string  false  "Exact match on property type"
// @Success      200            {object}  listListingsResponse
// @Failure      400            {object}  errorResponse
// @Failure      401            {object}  errorResponse
// @Router       /v1/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "page must be a positive integer"})
	}
	perPage, err := queryInt(c, "per_page", 10)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "per_page must be a positive integer"})
	}

	filter := ports.ListListingsFilter{
		Page:         page,
		PerPage:      perPage,
		PropertyType: c.QueryParam("property_type"),
	}

	listings, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listListingsResponse{
		Data:    listings,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	})
}

// Get handles GET /v1/listings/:id.
//
// @Summary      Get a listing by id
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  domain.Listing
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id} [get]
func (h *ListingHandler) Get(c echo.Context) error {
	listing, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listing)
}

// Reviews handles GET /v1/listings/:id/reviews.
//
// @Summary      Get a listing's reviews
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  reviewSummaryResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id}/reviews [get]
func (h *ListingHandler) Reviews(c echo.Context) error {
	summary, err := h.service.Reviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReviewSummaryResponse(summary))
}

// Create handles POST /v1/listings.
//
// @Summary      Create a new listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing payload"
// @Success      201   {object}  domain.Listing
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toListing(req))
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(created.PropertyType).Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/listings/:id.
//
// @Summary      Update a listing
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Listing id"
// @Param        body  body      updateListingRequest  true  "Partial listing payload"
// @Success      200   {object}  domain.Listing
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/listings/{id} [put]
func (h *ListingHandler) Update(c echo.Context) error {
	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/listings/:id. The deleted record is returned so
// the caller can render a confirmation.
//
// @Summary      Delete a listing
// @Tags         listings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  deleteListingResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/listings/{id} [delete]
func (h *ListingHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteListingResponse{
		Message: "listing deleted",
		Deleted: deleted,
	})
}

// queryInt parses a positive integer query parameter, returning def when the
// parameter is absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return n, nil
}
