package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/odalivan/experience_storefront/internal/adapter/handler"
	"github.com/odalivan/experience_storefront/internal/core/domain"
	"github.com/odalivan/experience_storefront/internal/core/ports/mocks"
	"github.com/odalivan/experience_storefront/internal/core/services"
)

func TestListExperiencesHandler_Success(t *testing.T) {
	mockCatalog := mocks.NewExperienceCatalog(t)

	mockCatalog.On("ListExperiences", mock.Anything).Return([]domain.Experience{
		{ID: "exp-1", Title: "Desert Safari", BasePrice: decimal.NewFromInt(200)},
	}, nil)

	h := handler.NewCatalogHandler(services.NewCatalogService(mockCatalog))

	req := httptest.NewRequest(http.MethodGet, "/experiences", nil)
	rec := httptest.NewRecorder()

	h.ListExperiences(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	if assert.Len(t, body, 1) {
		assert.Equal(t, "Desert Safari", body[0]["title"])
	}
}

func TestListExperiencesHandler_Fail_BackendDown(t *testing.T) {
	mockCatalog := mocks.NewExperienceCatalog(t)

	mockCatalog.On("ListExperiences", mock.Anything).Return(nil, errors.New("connection refused"))

	h := handler.NewCatalogHandler(services.NewCatalogService(mockCatalog))

	req := httptest.NewRequest(http.MethodGet, "/experiences", nil)
	rec := httptest.NewRecorder()

	h.ListExperiences(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Could not fetch data from the server.", body["error"])
}

func TestGetExperienceHandler_NotFound(t *testing.T) {
	mockCatalog := mocks.NewExperienceCatalog(t)

	mockCatalog.On("GetExperience", mock.Anything, "missing").Return(nil, domain.ErrExperienceNotFound)

	h := handler.NewCatalogHandler(services.NewCatalogService(mockCatalog))

	req := httptest.NewRequest(http.MethodGet, "/experiences/missing", nil)
	rec := httptest.NewRecorder()

	h.GetExperience(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetExperienceHandler_Success(t *testing.T) {
	mockCatalog := mocks.NewExperienceCatalog(t)

	mockCatalog.On("GetExperience", mock.Anything, "exp-1").Return(&domain.Experience{
		ID:        "exp-1",
		Title:     "Desert Safari",
		BasePrice: decimal.NewFromInt(200),
		Slots: []domain.Slot{
			{ID: "slot-1", Date: "2026-10-01T09:00:00.000Z", AvailableSpots: 4},
		},
	}, nil)

	h := handler.NewCatalogHandler(services.NewCatalogService(mockCatalog))

	req := httptest.NewRequest(http.MethodGet, "/experiences/exp-1", nil)
	rec := httptest.NewRecorder()

	h.GetExperience(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Desert Safari", body["title"])
}
