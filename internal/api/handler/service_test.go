package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cultplace/cultplace-api/internal/api/handler/router"
	"github.com/cultplace/cultplace-api/internal/domain"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
	ingestingmocks "github.com/cultplace/cultplace-api/internal/usecases/ingesting/mocks"
	"github.com/cultplace/cultplace-api/pkg/apiErrors"
)

func TestCreateService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockShiftIngester(ctrl)

	rt := router.New(
		router.WithRoutes(router.Route{
			Path:    "/v1/services",
			Method:  http.MethodPost,
			Handler: CreateService(mockIngester),
		}),
	)

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setup          func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Ingestion réussie",
			body: `{"date":"2026-03-14"}`,
			setup: func() {
				mockIngester.EXPECT().
					IngestShift(date).
					Return(&domain.Service{ID: 42, Company: "La Petite Halle", Revenue: 1500}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Date absente",
			body:           `{}`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Format de date invalide",
			body:           `{"date":"14/03/2026"}`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidDateFormat,
		},
		{
			name: "Aucune vente pour la date",
			body: `{"date":"2026-03-14"}`,
			setup: func() {
				mockIngester.EXPECT().
					IngestShift(date).
					Return(nil, ingesting.ErrNoSales)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNoSalesForDate,
		},
		{
			name: "Produit absent du menu",
			body: `{"date":"2026-03-14"}`,
			setup: func() {
				mockIngester.EXPECT().
					IngestShift(date).
					Return(nil, ingesting.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name: "Clé naturelle dupliquée dans le menu",
			body: `{"date":"2026-03-14"}`,
			setup: func() {
				mockIngester.EXPECT().
					IngestShift(date).
					Return(nil, ingesting.ErrDuplicateProduct)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrResourceConflict,
		},
		{
			name: "Service déjà enregistré pour la date",
			body: `{"date":"2026-03-14"}`,
			setup: func() {
				mockIngester.EXPECT().
					IngestShift(date).
					Return(nil, ingesting.ErrShiftAlreadyIngested)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apiErrors.ErrResourceConflict,
		},
		{
			name: "Erreur interne",
			body: `{"date":"2026-03-14"}`,
			setup: func() {
				mockIngester.EXPECT().
					IngestShift(date).
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			request := httptest.NewRequest(http.MethodPost, "/v1/services", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			rt.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}
		})
	}
}
