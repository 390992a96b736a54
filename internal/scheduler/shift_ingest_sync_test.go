package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cultplace/cultplace-api/infrastructure/repository/mocks"
	"github.com/cultplace/cultplace-api/internal/domain"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
	ingestingmocks "github.com/cultplace/cultplace-api/internal/usecases/ingesting/mocks"
)

func TestShiftIngestSyncService_ingestPendingShiftsAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockShiftIngester(ctrl)
	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)

	service := &ShiftIngestSyncService{
		ingester:    mockIngester,
		serviceRepo: mockServiceRepo,
		company:     "La Petite Halle",
		config: ShiftIngestSyncConfig{
			LookbackDays: 2,
		},
	}

	now := time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC)
	twoDaysAgo := now.AddDate(0, 0, -2)
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Les journées sans service enregistré sont ingérées, de la plus ancienne à la plus récente",
			setup: func() {
				first := mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", twoDaysAgo).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(twoDaysAgo).
					Return(&domain.Service{ID: 41, Revenue: 1500}, nil).
					After(first)

				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", yesterday).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(yesterday).
					Return(&domain.Service{ID: 42, Revenue: 1800}, nil)
			},
		},
		{
			name: "Une journée déjà agrégée est ignorée",
			setup: func() {
				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", twoDaysAgo).
					Return(&domain.Service{ID: 41}, nil)

				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", yesterday).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(yesterday).
					Return(&domain.Service{ID: 42}, nil)
			},
		},
		{
			name: "Une journée sans vente n'interrompt pas le parcours",
			setup: func() {
				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", twoDaysAgo).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(twoDaysAgo).
					Return(nil, ingesting.ErrNoSales)

				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", yesterday).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(yesterday).
					Return(&domain.Service{ID: 42}, nil)
			},
		},
		{
			name: "Une erreur d'ingestion est journalisée sans interrompre le parcours",
			setup: func() {
				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", twoDaysAgo).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(twoDaysAgo).
					Return(nil, assert.AnError)

				mockServiceRepo.EXPECT().
					GetByDate("La Petite Halle", yesterday).
					Return(nil, nil)
				mockIngester.EXPECT().
					IngestShift(yesterday).
					Return(&domain.Service{ID: 42}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.ingestPendingShiftsAt(now)
		})
	}
}

func TestShiftIngestSyncService_GetStatus(t *testing.T) {
	service := &ShiftIngestSyncService{
		config: ShiftIngestSyncConfig{
			CronSchedule: "0 7 * * *",
			LookbackDays: 3,
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, 3, status["lookback_days"])
}
