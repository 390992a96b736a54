package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/internal/scheduler"
	"github.com/cultplace/cultplace-api/pkg/apiErrors"
)

// CronJobType définit le type de cron job déclenchable manuellement
const (
	CronJobTypeShiftIngest = "shift-ingest"
	CronJobTypeAll         = "all"
)

// CronJobServices regroupe les planificateurs pilotables par l'API
type CronJobServices struct {
	ShiftIngestSyncService *scheduler.ShiftIngestSyncService
}

// RunCronJob déclenche manuellement une cron job
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Type de cron job non précisé", nil)
			return
		}

		switch cronType {
		case CronJobTypeShiftIngest, CronJobTypeAll:
			if services.ShiftIngestSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Service d'ingestion des services indisponible", nil)
				return
			}
			services.ShiftIngestSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Type de cron job invalide. Valeurs acceptées : shift-ingest, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job démarrée",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retourne l'état des cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if services.ShiftIngestSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Service d'ingestion des services indisponible", nil)
			return
		}

		status := map[string]any{
			"shift-ingest": services.ShiftIngestSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
