package intake

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshop/internal/httpx"
	"bookshop/internal/isbn"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type addBookRequest struct {
	ISBN      string `json:"isbn" validate:"required,min=10,max=17"`
	Condition string `json:"condition" validate:"required,oneof=new as_new damaged"`
}

// AddBook handles POST /v1/books
// @Summary Add a book to the catalog
// @Description Validate the ISBN, price and title the book, and return a complete entry or one flagged for manual review
// @Tags books
// @Accept json
// @Produce json
// @Param request body addBookRequest true "Book to add"
// @Success 200 {object} httpx.SuccessResponse
// @Success 202 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *HTTPHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid parameters", details)
		return
	}

	// The oneof tag already closed the enumeration; this cannot fail here.
	condition, err := ParseCondition(req.Condition)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid parameters", []httpx.ErrorDetail{
			{Field: "condition", Message: err.Error()},
		})
		return
	}

	entry, err := h.svc.AddBook(r.Context(), req.ISBN, condition)
	if err != nil {
		var invalidErr *isbn.InvalidError
		if errors.As(err, &invalidErr) {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ISBN", "Invalid ISBN format", []httpx.ErrorDetail{
				{Field: "isbn", Message: invalidErr.Error()},
			})
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	if entry.Status == StatusNeedsReview {
		httpx.JSONAccepted(w, r, entry)
		return
	}
	httpx.JSONSuccess(w, r, entry)
}
