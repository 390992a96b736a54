package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultplace/cultplace-api/internal/api/handler/router"
	"github.com/cultplace/cultplace-api/pkg/apiErrors"
)

func TestCronHandlers(t *testing.T) {
	// Aucun planificateur branché : les handlers doivent répondre proprement
	rt := router.New(
		router.WithRoutes(CronJobs(CronJobServices{})...),
	)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Statut sans planificateur disponible",
			method:         http.MethodGet,
			path:           "/v1/cron/status",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:           "Déclenchement sans planificateur disponible",
			method:         http.MethodPost,
			path:           "/v1/cron/shift-ingest/run",
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:           "Type de cron job inconnu",
			method:         http.MethodPost,
			path:           "/v1/cron/reconcile-everything/run",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			recorder := httptest.NewRecorder()

			rt.ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.expectedCode, apiErr.Code)
		})
	}
}
