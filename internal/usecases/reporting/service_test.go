package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cultplace/cultplace-api/infrastructure/repository/mocks"
	"github.com/cultplace/cultplace-api/internal/domain"
)

func TestService_GetService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockServiceRepo)

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "Service existant",
			setup: func() {
				mockServiceRepo.EXPECT().
					GetByID(int64(42)).
					Return(&domain.Service{ID: 42, Company: "La Petite Halle"}, nil)
			},
		},
		{
			name: "Service introuvable",
			setup: func() {
				mockServiceRepo.EXPECT().
					GetByID(int64(42)).
					Return(nil, nil)
			},
			wantErr: ErrServiceNotFound,
		},
		{
			name: "Erreur en base",
			setup: func() {
				mockServiceRepo.EXPECT().
					GetByID(int64(42)).
					Return(nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.GetService(42)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(42), result.ID)
		})
	}
}

func TestService_DeleteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockServiceRepo)

	t.Run("Suppression d'un service existant", func(t *testing.T) {
		mockServiceRepo.EXPECT().
			GetByID(int64(42)).
			Return(&domain.Service{ID: 42}, nil)
		mockServiceRepo.EXPECT().
			Delete(int64(42)).
			Return(nil)

		assert.NoError(t, service.DeleteService(42))
	})

	t.Run("Service introuvable, aucune suppression tentée", func(t *testing.T) {
		mockServiceRepo.EXPECT().
			GetByID(int64(42)).
			Return(nil, nil)

		assert.ErrorIs(t, service.DeleteService(42), ErrServiceNotFound)
	})
}

func TestService_RevenueBetween(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockServiceRepo)

	stored := &domain.Service{
		ID: 42,
		Timeline: map[string][]float64{
			"2026-03-14 18:30:00": {4.5, 3.2},
			"2026-03-14 21:00:00": {10.0},
			"2026-03-15 01:15:00": {6.3},
		},
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		setup    func()
		expected float64
	}{
		{
			name:  "Fenêtre couvrant tout le service",
			start: time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC),
			setup: func() {
				mockServiceRepo.EXPECT().GetByID(int64(42)).Return(stored, nil)
			},
			expected: 24.0,
		},
		{
			name:  "Fenêtre partielle en début de soirée",
			start: time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
			setup: func() {
				mockServiceRepo.EXPECT().GetByID(int64(42)).Return(stored, nil)
			},
			expected: 7.7,
		},
		{
			name:  "Les bornes sont strictes, une vente pile sur la borne est exclue",
			start: time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC),
			setup: func() {
				mockServiceRepo.EXPECT().GetByID(int64(42)).Return(stored, nil)
			},
			expected: 6.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			revenue, err := service.RevenueBetween(42, tt.start, tt.end)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, revenue)
		})
	}
}

func TestService_RevenueByProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockServiceRepo)

	stored := &domain.Service{
		ID: 42,
		ProductsByName: map[string][]domain.SaleEvent{
			"MOJITO": {
				{Timestamp: "2026-03-14 21:00:00", Amount: 9.0},
				{Timestamp: "2026-03-14 23:30:00", Amount: 9.0},
			},
			"Burger": {
				{Timestamp: "2026-03-14 20:00:00", Amount: 12.5},
			},
		},
	}

	t.Run("Somme des ventes du produit", func(t *testing.T) {
		mockServiceRepo.EXPECT().GetByID(int64(42)).Return(stored, nil)

		revenue, err := service.RevenueByProduct(42, "MOJITO")

		assert.NoError(t, err)
		assert.Equal(t, 18.0, revenue)
	})

	t.Run("Produit jamais vendu sur ce service", func(t *testing.T) {
		mockServiceRepo.EXPECT().GetByID(int64(42)).Return(stored, nil)

		revenue, err := service.RevenueByProduct(42, "SPRITZ")

		assert.NoError(t, err)
		assert.Equal(t, 0.0, revenue)
	})
}

func TestService_ListServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServiceRepo := mocks.NewMockServiceRepository(ctrl)
	service := NewService(mockServiceRepo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mockServiceRepo.EXPECT().
		List(2, PerPage, &start, nil).
		Return([]*domain.Service{{ID: 41}, {ID: 40}}, nil)

	services, err := service.ListServices(2, &start, nil)

	assert.NoError(t, err)
	assert.Len(t, services, 2)
}
