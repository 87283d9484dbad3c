package intake

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool  `json:"success"`
	Data    Entry `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func postBook(t *testing.T, h *HTTPHandler, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/books", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")

	h.AddBook(w, r)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestHTTPHandler_AddBook(t *testing.T) {
	newHandler := func() (*HTTPHandler, *mockPriceSource, *mockTitleSource) {
		mPrices := new(mockPriceSource)
		mTitles := new(mockTitleSource)
		return NewHTTPHandler(NewService(mPrices, mTitles)), mPrices, mTitles
	}

	t.Run("complete entry returns 200", func(t *testing.T) {
		h, mPrices, mTitles := newHandler()
		mPrices.On("LookupPrice", mock.Anything, "9780140328721").Return(Found(100.0))
		mTitles.On("LookupTitle", mock.Anything, "9780140328721").Return(Found("Example Title"))

		w, env := postBook(t, h, `{"isbn":"9780140328721","condition":"new"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, StatusComplete, env.Data.Status)
		assert.Equal(t, "Example Title", env.Data.Title)
		require.NotNil(t, env.Data.Price)
		assert.Equal(t, 100.0, *env.Data.Price)
		assert.Empty(t, env.Data.Reason)
	})

	t.Run("needs_review returns 202", func(t *testing.T) {
		h, mPrices, mTitles := newHandler()
		mPrices.On("LookupPrice", mock.Anything, "9780140328721").Return(Absent[float64]())
		mTitles.On("LookupTitle", mock.Anything, "9780140328721").Return(Absent[string]())

		w, env := postBook(t, h, `{"isbn":"9780140328721","condition":"damaged"}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, StatusNeedsReview, env.Data.Status)
		assert.Equal(t, ReasonMissingTitleAndPrice, env.Data.Reason)
		assert.Nil(t, env.Data.Price)
		assert.Empty(t, env.Data.Title)
	})

	t.Run("condition multiplier is applied", func(t *testing.T) {
		h, mPrices, mTitles := newHandler()
		mPrices.On("LookupPrice", mock.Anything, "9780140328721").Return(Found(100.0))
		mTitles.On("LookupTitle", mock.Anything, "9780140328721").Return(Absent[string]())

		w, env := postBook(t, h, `{"isbn":"9780140328721","condition":"as_new"}`)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, ReasonMissingTitle, env.Data.Reason)
		require.NotNil(t, env.Data.Price)
		assert.Equal(t, 80.0, *env.Data.Price)
	})

	t.Run("short isbn is rejected at the boundary", func(t *testing.T) {
		h, mPrices, mTitles := newHandler()

		w, env := postBook(t, h, `{"isbn":"123","condition":"new"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "isbn", env.Error.Details[0].Field)
		assert.Contains(t, env.Error.Details[0].Message, "at least 10")

		mPrices.AssertNotCalled(t, "LookupPrice", mock.Anything, mock.Anything)
		mTitles.AssertNotCalled(t, "LookupTitle", mock.Anything, mock.Anything)
	})

	t.Run("unknown condition is rejected at the boundary", func(t *testing.T) {
		h, mPrices, mTitles := newHandler()

		w, env := postBook(t, h, `{"isbn":"9780140328721","condition":"used"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

		mPrices.AssertNotCalled(t, "LookupPrice", mock.Anything, mock.Anything)
		mTitles.AssertNotCalled(t, "LookupTitle", mock.Anything, mock.Anything)
	})

	t.Run("missing fields report per-field details", func(t *testing.T) {
		h, _, _ := newHandler()

		w, env := postBook(t, h, `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Len(t, env.Error.Details, 2)
	})

	t.Run("bad checksum reports INVALID_ISBN", func(t *testing.T) {
		h, mPrices, mTitles := newHandler()

		w, env := postBook(t, h, `{"isbn":"9780140328722","condition":"new"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ISBN", env.Error.Code)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "isbn", env.Error.Details[0].Field)
		assert.Contains(t, env.Error.Details[0].Message, "9780140328722")

		mPrices.AssertNotCalled(t, "LookupPrice", mock.Anything, mock.Anything)
		mTitles.AssertNotCalled(t, "LookupTitle", mock.Anything, mock.Anything)
	})

	t.Run("invalid JSON body returns 400", func(t *testing.T) {
		h, _, _ := newHandler()

		w, env := postBook(t, h, `{"isbn":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}
