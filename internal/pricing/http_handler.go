package pricing

import (
	"net/http"

	"bookshop/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// GetPrice handles GET /v1/price
// @Summary Price an ISBN
// @Description Return the source price for an ISBN, if one is known
// @Tags pricing
// @Produce json
// @Param isbn query string true "ISBN to price"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/price [get]
func (h *HTTPHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	isbn := r.URL.Query().Get("isbn")
	if isbn == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid ISBN", []httpx.ErrorDetail{
			{Field: "isbn", Message: "isbn is required"},
		})
		return
	}

	price, ok := h.svc.PriceFor(isbn)
	if !ok {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Price not found", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]float64{"price": price})
}
