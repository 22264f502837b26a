package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lunchmicro/lunchsvc/internal/domain/model"
	"github.com/lunchmicro/lunchsvc/internal/server/http/handlers"
	testhelpers "github.com/lunchmicro/lunchsvc/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	childID := uuid.New()
	facade := testhelpers.OrderFacadeStub{
		ForChildFn: func(context.Context, uuid.UUID) ([]model.Order, error) {
			return []model.Order{{ID: uuid.New(), ChildID: childID, Meal: model.MealBeanWithSalad, Status: model.OrderStatusPaid}}, nil
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]any{
		"parentId":  uuid.New(),
		"childId":   childID,
		"meal":      string(model.MealBakedFishWithVegetables),
		"quantity":  1,
		"dayOfWeek": "WEDNESDAY",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lunches/order", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for order creation, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/lunches/child/"+childID.String(), nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for child listing, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/lunches/"+uuid.NewString()+"?childId="+childID.String(), nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 for cancellation, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for health, got %d", resp.Code)
	}
}

func TestSetupServesGzipResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(testhelpers.OrderFacadeStub{}, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lunches/parent/"+uuid.NewString(), nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", resp.Header().Get("Content-Encoding"))
	}

	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer zr.Close()
	decoded, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if string(decoded) != "[]" {
		t.Fatalf("expected empty array, got %q", decoded)
	}
}

var _ handlers.LunchFacade = testhelpers.OrderFacadeStub{}
