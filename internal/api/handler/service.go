package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
	"github.com/cultplace/cultplace-api/internal/usecases/reporting"
	"github.com/cultplace/cultplace-api/pkg/apiErrors"
	"github.com/cultplace/cultplace-api/pkg/utils"
)

// CreateServiceRequest est le corps attendu pour déclencher l'ingestion d'un service
type CreateServiceRequest struct {
	Date string `json:"date"`
}

// RevenueRequest est le corps des requêtes de chiffre d'affaires sur un service.
// Avec ProductName, la somme porte sur le produit ; sinon StartAt et EndAt
// bornent la fenêtre horaire.
type RevenueRequest struct {
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	ProductName string `json:"product_name"`
}

// CreateService ingère et persiste le service de la date demandée
func CreateService(service ingesting.ShiftIngester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateService")

		w.Header().Set("Content-Type", "application/json")

		var request CreateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corps de la requête invalide : "+err.Error(), nil)
			return
		}

		if request.Date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La date du service est obligatoire", nil)
			return
		}

		date, err := utils.ParseDate(request.Date)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Format de date invalide, attendu AAAA-MM-JJ", nil)
			return
		}

		result, err := service.IngestShift(*date)
		if err != nil {
			logrus.WithError(err).WithField("date", request.Date).Error("Erreur lors de l'ingestion du service")

			switch {
			case errors.Is(err, ingesting.ErrNoSales):
				apiErrors.WriteError(w, apiErrors.ErrNoSalesForDate, "Aucune vente pour cette date", map[string]interface{}{
					"date": request.Date,
				})

			case errors.Is(err, ingesting.ErrProductNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produit introuvable dans le menu, resynchroniser le catalogue", nil)

			case errors.Is(err, ingesting.ErrDuplicateProduct):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Plusieurs produits du menu partagent la même clé", nil)

			case errors.Is(err, ingesting.ErrShiftAlreadyIngested):
				apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Un service est déjà enregistré pour cette date", map[string]interface{}{
					"date": request.Date,
				})

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'ingestion du service", nil)
			}
			return
		}

		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}

// ListServices liste les services agrégés, du plus récent au plus ancien
func ListServices(service reporting.ServiceReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Numéro de page invalide", nil)
				return
			}
			page = parsed
		}

		startDate, err := parseOptionalDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Format de date invalide pour start_date, attendu AAAA-MM-JJ", nil)
			return
		}

		endDate, err := parseOptionalDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Format de date invalide pour end_date, attendu AAAA-MM-JJ", nil)
			return
		}

		services, err := service.ListServices(page, startDate, endDate)
		if err != nil {
			logrus.WithError(err).Error("Erreur lors du listing des services")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la consultation des services", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(services); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}

// GetService retourne un service agrégé par son identifiant
func GetService(service reporting.ServiceReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := serviceIDFromRequest(w, r)
		if !ok {
			return
		}

		result, err := service.GetService(id)
		if err != nil {
			writeReportingError(w, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}

// DeleteService supprime un service agrégé
func DeleteService(service reporting.ServiceReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteService")

		id, ok := serviceIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.DeleteService(id); err != nil {
			writeReportingError(w, id, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// GetServiceGraph retourne l'URL du camembert des boissons du service
func GetServiceGraph(service reporting.ServiceReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := serviceIDFromRequest(w, r)
		if !ok {
			return
		}

		result, err := service.GetService(id)
		if err != nil {
			writeReportingError(w, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"graph_url": result.GraphURL,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}

// GetServiceRevenue calcule un chiffre d'affaires partiel sur un service,
// par fenêtre horaire ou par produit
func GetServiceRevenue(service reporting.ServiceReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetServiceRevenue")

		id, ok := serviceIDFromRequest(w, r)
		if !ok {
			return
		}

		var request RevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corps de la requête invalide : "+err.Error(), nil)
			return
		}

		var revenue float64
		var err error

		switch {
		case request.ProductName != "":
			revenue, err = service.RevenueByProduct(id, request.ProductName)

		case request.StartAt != "" && request.EndAt != "":
			var start, end time.Time

			start, err = time.Parse(time.DateTime, request.StartAt)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Format d'horodatage invalide pour start_at, attendu AAAA-MM-JJ HH:MM:SS", nil)
				return
			}

			end, err = time.Parse(time.DateTime, request.EndAt)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Format d'horodatage invalide pour end_at, attendu AAAA-MM-JJ HH:MM:SS", nil)
				return
			}

			revenue, err = service.RevenueBetween(id, start, end)

		default:
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Renseigner product_name, ou start_at et end_at", nil)
			return
		}

		if err != nil {
			writeReportingError(w, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"service_id": id,
			"revenue":    revenue,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}

func serviceIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "L'identifiant du service est obligatoire", nil)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identifiant de service invalide", nil)
		return 0, false
	}

	return id, true
}

func writeReportingError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, reporting.ErrServiceNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Service introuvable", map[string]interface{}{
			"service_id": id,
		})
		return
	}

	logrus.WithError(err).WithField("service_id", id).Error("Erreur lors de la consultation du service")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la consultation du service", nil)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
