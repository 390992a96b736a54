package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog"
	"github.com/cultplace/cultplace-api/internal/api/handler"
	"github.com/cultplace/cultplace-api/internal/api/handler/router"
	"github.com/cultplace/cultplace-api/internal/config"
	"github.com/cultplace/cultplace-api/internal/scheduler"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
	"github.com/cultplace/cultplace-api/internal/usecases/reporting"
	"github.com/cultplace/cultplace-api/internal/usecases/syncing"
	"github.com/cultplace/cultplace-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	menuService syncing.ProductSyncer,
	ingestService ingesting.ShiftIngester,
	reportingService reporting.ServiceReporter,
	concertService sowprog.SowprogIntegrator,
	shiftIngestSyncService *scheduler.ShiftIngestSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ShiftIngestSyncService: shiftIngestSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Menu(menuService)...),
		router.WithRoutes(handler.Services(ingestService, reportingService)...),
		router.WithRoutes(handler.Concerts(concertService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Démarrage du serveur")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erreur pendant l'exécution du serveur")
		}
	}()

	// Canal pour attendre les signaux d'arrêt
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Signal d'interruption reçu")
	case <-ctx.Done():
		logrus.Info("Contexte de l'application annulé")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Début de l'arrêt gracieux du serveur")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erreur pendant l'arrêt du serveur")
		return err
	}

	logrus.Info("Serveur arrêté")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Serveur HTTP arrêté")
	return nil
}
