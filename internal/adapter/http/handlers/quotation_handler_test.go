package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"paint_quote/internal/adapter/http/handlers/mocks"
	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase"
	"paint_quote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validQuotationBody = `{
	"fullName": "Jane Wanjiru",
	"email": "jane@example.com",
	"phone": "0712345678",
	"area": 20,
	"coats": "Two coats",
	"coatsKey": "2",
	"paintType": "Interior",
	"paintCategory": "Standard",
	"paintCategoryKey": "standard",
	"estimatedPaintMaterialCost": 10000,
	"estimatedLabourCost": 3000,
	"estimatedTransportCost": 1000,
	"miscellaneousCost": 1400,
	"grandTotal": 15400,
	"overheadPercentage": 10
}`

func newQuotationRouter(h *QuotationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotations", h.ListQuotations)
	r.POST("/v1/quotations", h.CreateQuotation)
	r.PUT("/v1/quotations/:id", h.UpdateQuotation)
	r.DELETE("/v1/quotations/:id", h.DeleteQuotation)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestQuotationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list encodes as array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := doJSON(r, http.MethodGet, "/v1/quotations", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		w := doJSON(r, http.MethodGet, "/v1/quotations", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INTERNAL_ERROR" || strings.Contains(body.Message, "db down") {
			t.Fatalf("internal detail must not leak: %+v", body)
		}
	})
}

func TestQuotationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/quotations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_QUOTATION_INPUT" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/quotations", `{"fullName":"Jane","phone":"1","area":0,"coats":"2","paintType":"interior","paintCategory":"standard"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Code != "INVALID_QUOTATION" || !strings.Contains(body.Message, "email") || !strings.Contains(body.Message, "area") {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))

		body := strings.Replace(validQuotationBody, `"grandTotal": 15400`, `"grandTotal": -1`, 1)
		w := doJSON(r, http.MethodPost, "/v1/quotations", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w); !strings.Contains(got.Message, "grandTotal") {
			t.Fatalf("unexpected body: %+v", got)
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, &entities.ValidationError{Fields: []string{"email"}})

		w := doJSON(r, http.MethodPost, "/v1/quotations", validQuotationBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w); got.Message != "Invalid quotation: email" {
			t.Fatalf("unexpected body: %+v", got)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.GrandTotal != 15400 || q.CoatsKey != "2" || q.PaintCategory != "Standard" {
					t.Fatalf("unexpected quotation passed to usecase: %+v", q)
				}
				q.ID = "q-1"
				q.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
				return q, nil
			},
		)

		w := doJSON(r, http.MethodPost, "/v1/quotations", validQuotationBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["id"] != "q-1" || got["grandTotal"] != 15400.0 || got["timestamp"] != "2026-01-02T03:04:05Z" {
			t.Fatalf("unexpected response: %v", got)
		}
	})
}

func TestQuotationHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", entities.ErrQuotationNotFound, http.StatusNotFound, "QUOTATION_NOT_FOUND"},
		{"invalid id", usecase.ErrInvalidQuotationID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"negative amount", fmt.Errorf("%w: %w", entities.ErrValidation, usecase.ErrNegativeAmount), http.StatusBadRequest, "INVALID_QUOTATION"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuotationUseCase(ctrl)
			r := newQuotationRouter(NewQuotationHandler(uc))
			uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).Return(entities.Quotation{}, tt.err)

			w := doJSON(r, http.MethodPut, "/v1/quotations/q-1", validQuotationBody)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if body := decodeError(t, w); body.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %+v", tt.wantCode, body)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().Update(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, q entities.Quotation) (entities.Quotation, error) {
				q.ID = id
				return q, nil
			},
		)

		w := doJSON(r, http.MethodPut, "/v1/quotations/q-1", validQuotationBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"id":"q-1"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/quotations/q-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		r := newQuotationRouter(NewQuotationHandler(uc))
		uc.EXPECT().Delete(gomock.Any(), "q-1").Return(entities.ErrQuotationNotFound)

		w := doJSON(r, http.MethodDelete, "/v1/quotations/q-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
