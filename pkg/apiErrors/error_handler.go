package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Codes d'erreur exposés aux clients de l'API
const (
	// Erreurs de validation (VAL)
	ErrInvalidRequest      = "VAL_001" // Requête invalide
	ErrMissingRequiredData = "VAL_002" // Données obligatoires absentes
	ErrInvalidDateFormat   = "VAL_003" // Format de date invalide

	// Erreurs de ressources (RES)
	ErrResourceNotFound = "RES_001" // Ressource introuvable
	ErrResourceConflict = "RES_002" // Conflit d'intégrité (doublon de clé naturelle, données ambiguës)
	ErrNoSalesForDate   = "RES_003" // Aucune vente pour la date demandée

	// Erreurs serveur et collaborateurs externes (SRV)
	ErrInternalServer    = "SRV_001" // Erreur interne
	ErrDatabaseOperation = "SRV_002" // Erreur d'opération en base
	ErrExternalService   = "SRV_003" // Erreur d'un service externe (L'Addition, SowProg)
)

// Correspondance code d'erreur -> statut HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidDateFormat:   http.StatusBadRequest,
	ErrResourceNotFound:    http.StatusNotFound,
	ErrResourceConflict:    http.StatusConflict,
	ErrNoSalesForDate:      http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError représente une erreur d'API normalisée
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError écrit l'erreur normalisée dans la réponse HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
