package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/internal/usecases/syncing"
	"github.com/cultplace/cultplace-api/pkg/apiErrors"
)

// SyncMenu rapatrie le catalogue de la caisse et réconcilie la table des produits
func SyncMenu(service syncing.ProductSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncMenu")

		created, updated, err := service.SyncProducts()
		if err != nil {
			logrus.WithError(err).Error("Erreur lors de la synchronisation du menu")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erreur lors de la synchronisation du catalogue", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]any{
			"created": len(created),
			"updated": len(updated),
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'encodage de la réponse", nil)
		}
	})
}
