package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/infrastructure/database/postgres"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/imagecharts"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/laddition"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/ladditionclient"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog/sowprogclient"
	"github.com/cultplace/cultplace-api/infrastructure/repository"
	"github.com/cultplace/cultplace-api/internal/api"
	"github.com/cultplace/cultplace-api/internal/config"
	"github.com/cultplace/cultplace-api/internal/scheduler"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
	"github.com/cultplace/cultplace-api/internal/usecases/reporting"
	"github.com/cultplace/cultplace-api/internal/usecases/syncing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Niveau de log invalide : %s, utilisation de 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Niveau de log configuré : %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)

	ladditionClient := ladditionclient.NewClient(cfg)
	ladditionIntegrator := laddition.New(cfg, ladditionClient)

	sowprogClient := sowprogclient.NewClient(cfg)
	sowprogIntegrator := sowprog.New(cfg, sowprogClient)

	chartsClient := imagecharts.NewClient(cfg)

	menuService := syncing.NewService(ladditionIntegrator, productRepo)
	ingestService := ingesting.NewService(cfg, ladditionIntegrator, sowprogIntegrator, chartsClient, productRepo, serviceRepo)
	reportingService := reporting.NewService(serviceRepo)

	shiftIngestSyncService := scheduler.NewShiftIngestSyncService(ingestService, serviceRepo, cfg)

	if err := shiftIngestSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erreur au démarrage du planificateur d'ingestion des services")
	} else {
		logrus.Info("Planificateur d'ingestion des services démarré")
	}

	server, err := api.New(
		cfg,
		menuService,
		ingestService,
		reportingService,
		sowprogIntegrator,
		shiftIngestSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configure le format et le comportement des logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn établit la connexion à la base de données
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erreur de connexion à PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erreur au test de la connexion PostgreSQL")
	}

	logrus.Info("Connexion à PostgreSQL établie")
	return conn
}
