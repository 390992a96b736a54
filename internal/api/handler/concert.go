package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog"
	"github.com/cultplace/cultplace-api/pkg/apiErrors"
	"github.com/cultplace/cultplace-api/pkg/utils"
)

// GetConcert résout le concert programmé à la date donnée.
// Une défaillance de l'agenda ne produit pas d'erreur HTTP : le nom
// sentinelle et la fiche par défaut décrivent déjà l'issue.
func GetConcert(service sowprog.SowprogIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawDate := r.URL.Query().Get("date")
		if rawDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Le paramètre date est obligatoire", nil)
			return
		}

		date, err := utils.ParseDate(rawDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Format de date invalide, attendu AAAA-MM-JJ", nil)
			return
		}

		concert, infos, err := service.ResolveConcert(*date)
		if err != nil {
			logrus.WithError(err).WithField("date", rawDate).Warn("Résolution du concert dégradée")
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"concert": concert,
			"infos":   infos,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}
