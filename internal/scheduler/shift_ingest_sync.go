// Package scheduler contient les services de planification de l'ingestion des services
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/cultplace/cultplace-api/infrastructure/repository"
	"github.com/cultplace/cultplace-api/internal/config"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
)

type ShiftIngestSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// ShiftIngestSyncService ingère chaque matin les services des journées écoulées
// qui n'ont pas encore été agrégés.
type ShiftIngestSyncService struct {
	scheduler           *gocron.Scheduler
	ingester            ingesting.ShiftIngester
	serviceRepo         repository.ServiceRepository
	company             string
	config              ShiftIngestSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewShiftIngestSyncService(
	ingester ingesting.ShiftIngester,
	serviceRepo repository.ServiceRepository,
	cfg *config.Config,
) *ShiftIngestSyncService {
	syncConfig := ShiftIngestSyncConfig{
		CronSchedule: cfg.ShiftIngestSync.CronSchedule, // Défaut : 7h du matin tous les jours
		LookbackDays: cfg.ShiftIngestSync.LookbackDays,
		SyncEnabled:  cfg.ShiftIngestSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuration du planificateur d'ingestion des services chargée")

	return &ShiftIngestSyncService{
		scheduler:   scheduler,
		ingester:    ingester,
		serviceRepo: serviceRepo,
		company:     cfg.Venue.Company,
		config:      syncConfig,
	}
}

func (s *ShiftIngestSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron d'ingestion des services désactivé par configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Démarrage du cron d'ingestion des services")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.IngestPendingShifts(); err != nil {
			logrus.WithError(err).Error("Erreur lors de l'ingestion planifiée des services")
		}
	})
	if err != nil {
		return fmt.Errorf("erreur lors de la planification de l'ingestion des services : %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Arrêt du cron d'ingestion des services")
		s.scheduler.Stop()
	}()

	return nil
}

// IngestPendingShifts parcourt les derniers jours et ingère chaque journée
// qui n'a pas encore de service enregistré.
func (s *ShiftIngestSyncService) IngestPendingShifts() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Une ingestion des services est déjà en cours")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Début de l'ingestion des services en attente")

	s.ingestPendingShiftsAt(time.Now())

	logrus.Info("Ingestion des services en attente terminée")

	return nil
}

func (s *ShiftIngestSyncService) ingestPendingShiftsAt(now time.Time) {
	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	for offset := lookback; offset >= 1; offset-- {
		date := now.AddDate(0, 0, -offset)
		s.ingestShiftIfMissing(date)
	}
}

func (s *ShiftIngestSyncService) ingestShiftIfMissing(date time.Time) {
	dateStr := date.Format(time.DateOnly)

	existing, err := s.serviceRepo.GetByDate(s.company, date)
	if err != nil {
		logrus.WithError(err).WithField("date", dateStr).Error("Erreur lors de la vérification du service existant")
		return
	}

	if existing != nil {
		logrus.WithField("date", dateStr).Debug("Service déjà enregistré, journée ignorée")
		return
	}

	service, err := s.ingester.IngestShift(date)
	if err != nil {
		if errors.Is(err, ingesting.ErrNoSales) {
			logrus.WithField("date", dateStr).Info("Aucune vente pour cette journée, rien à ingérer")
			return
		}

		logrus.WithError(err).WithField("date", dateStr).Error("Erreur lors de l'ingestion du service")
		return
	}

	logrus.WithFields(logrus.Fields{
		"date":       dateStr,
		"service_id": service.ID,
		"revenue":    service.Revenue,
	}).Info("Service ingéré par le planificateur")
}

// TriggerManualSync lance manuellement une ingestion des services en attente
func (s *ShiftIngestSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestion des services déjà en cours, demande manuelle ignorée")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Démarrage d'une ingestion manuelle des services")
	go s.IngestPendingShifts()
}

// GetStatus retourne l'état courant du planificateur
func (s *ShiftIngestSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
