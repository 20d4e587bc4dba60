package handler

import (
	"strconv"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/usecase"
	"ethiohomes/pkg/errors"
	"ethiohomes/pkg/response"
	"ethiohomes/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type createListingRequest struct {
	Title          string                     `json:"title" validate:"required,min=3"`
	Description    string                     `json:"description" validate:"required"`
	Price          int64                      `json:"price" validate:"required,gt=0"`
	Currency       string                     `json:"currency" validate:"required,oneof=ETB USD"`
	Type           string                     `json:"type" validate:"required"`
	Bedrooms       int                        `json:"bedrooms"`
	Bathrooms      int                        `json:"bathrooms"`
	Size           float64                    `json:"size"`
	Features       []string                   `json:"features"`
	City           string                     `json:"city" validate:"required"`
	Area           string                     `json:"area"`
	PhoneNumber    string                     `json:"phone_number" validate:"required"`
	WhatsappNumber string                     `json:"whatsapp_number"`
	IsPremium      bool                       `json:"is_premium"`
	PaymentMethod  string                     `json:"payment_method" validate:"required,oneof=cbe telebirr"`
	Images         []usecase.ListingImageInput `json:"images"`
}

func (r createListingRequest) toInput() usecase.CreateListingInput {
	return usecase.CreateListingInput{
		Title:          r.Title,
		Description:    r.Description,
		Price:          r.Price,
		Currency:       r.Currency,
		Type:           r.Type,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		Size:           r.Size,
		Features:       r.Features,
		City:           r.City,
		Area:           r.Area,
		PhoneNumber:    r.PhoneNumber,
		WhatsappNumber: r.WhatsappNumber,
		IsPremium:      r.IsPremium,
		PaymentMethod:  r.PaymentMethod,
	}
}

func filterFromQuery(c echo.Context) usecase.ListingFilter {
	minPrice, _ := strconv.ParseInt(c.QueryParam("min_price"), 10, 64)
	maxPrice, _ := strconv.ParseInt(c.QueryParam("max_price"), 10, 64)
	premium, _ := strconv.ParseBool(c.QueryParam("premium"))
	featured, _ := strconv.ParseBool(c.QueryParam("featured"))

	return usecase.ListingFilter{
		Type:     c.QueryParam("type"),
		City:     c.QueryParam("city"),
		Currency: c.QueryParam("currency"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Premium:  premium,
		Featured: featured,
		Sort:     c.QueryParam("sort"),
	}
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, payment, err := h.listingUseCase.CreateListing(c.Request().Context(), uid, req.toInput(), req.Images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"listing": listing,
		"payment": payment,
	})
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), c.Param("id"), uid, req.toInput(), req.Images)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	filter := filterFromQuery(c)

	query := c.QueryParam("q")

	var (
		listings []*entity.Listing
		total    int64
		err      error
	)
	if query != "" {
		listings, total, err = h.listingUseCase.SearchListings(c.Request().Context(), query, filter, params.Page, params.PageSize)
	} else {
		listings, total, err = h.listingUseCase.ListListings(c.Request().Context(), filter, params.Page, params.PageSize)
	}
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

// ListAdminListings is the moderation view. Unlike the public list it
// defaults to no status filter, so pending items show up.
func (h *ListingHandler) ListAdminListings(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	filter := filterFromQuery(c)
	filter.Status = entity.ListingStatus(c.QueryParam("status"))

	listings, total, err := h.listingUseCase.ListListings(c.Request().Context(), filter, params.Page, params.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	status := entity.ListingStatus(c.QueryParam("status"))

	listings, total, err := h.listingUseCase.ListByOwner(c.Request().Context(), uid, status, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) MarkSold(c echo.Context) error {
	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.MarkSold(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ApproveListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.ApproveListing(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) RejectListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.RejectListing(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Listing deleted"})
}

type bulkDeleteRequest struct {
	Predicate string `json:"predicate" validate:"required,oneof=rejected all broker_properties"`
}

func (h *ListingHandler) BulkDeleteListings(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	deleted, err := h.listingUseCase.BulkDeleteListings(c.Request().Context(), uid, req.Predicate)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"deleted": deleted})
}

type flagRequest struct {
	Value bool `json:"value"`
}

func (h *ListingHandler) SetFeatured(c echo.Context) error {
	var req flagRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.SetFeatured(c.Request().Context(), uid, c.Param("id"), req.Value)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) SetPremium(c echo.Context) error {
	var req flagRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	listing, err := h.listingUseCase.SetPremium(c.Request().Context(), uid, c.Param("id"), req.Value)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

// QuoteListingFee lets clients show the posting fee before submitting.
func (h *ListingHandler) QuoteListingFee(c echo.Context) error {
	propertyType := c.QueryParam("type")
	if !entity.IsValidListingType(propertyType) {
		return response.Error(c, errors.BadRequest("Invalid listing type", nil))
	}

	premium, _ := strconv.ParseBool(c.QueryParam("premium"))

	return response.Success(c, map[string]interface{}{
		"type":     propertyType,
		"premium":  premium,
		"fee":      entity.ComputeListingFee(propertyType, premium),
		"currency": entity.CurrencyETB,
	})
}
