package laddition

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	ladditiondomain "github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/domain"
	ladditionmocks "github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/mocks"
)

func TestLadditionService_FetchAllProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ladditionmocks.NewMockClient(ctrl)

	service := &LadditionService{
		Client: mockClient,
	}

	tests := []struct {
		name     string
		setup    func()
		expected int
		hasError bool
	}{
		{
			name: "Toutes les pages du catalogue sont chargées",
			setup: func() {
				mockClient.EXPECT().
					GetProducts(0).
					Return(&ladditiondomain.ProductPage{LastPage: 2}, nil)

				mockClient.EXPECT().
					GetProducts(1).
					Return(&ladditiondomain.ProductPage{
						LastPage: 2,
						Data: []ladditiondomain.ProductRecord{
							{IDProductGlobal: json.Number("1"), ProductName: "Demi Blonde"},
							{IDProductGlobal: json.Number("2"), ProductName: "Burger"},
						},
					}, nil)

				mockClient.EXPECT().
					GetProducts(2).
					Return(&ladditiondomain.ProductPage{
						LastPage: 2,
						Data: []ladditiondomain.ProductRecord{
							{IDProductGlobal: json.Number("3"), ProductName: "MOJITO"},
						},
					}, nil)
			},
			expected: 3,
		},
		{
			name: "Une page en erreur est ignorée, le reste du catalogue est conservé",
			setup: func() {
				mockClient.EXPECT().
					GetProducts(0).
					Return(&ladditiondomain.ProductPage{LastPage: 3}, nil)

				mockClient.EXPECT().
					GetProducts(1).
					Return(&ladditiondomain.ProductPage{
						LastPage: 3,
						Data: []ladditiondomain.ProductRecord{
							{IDProductGlobal: json.Number("1"), ProductName: "Demi Blonde"},
						},
					}, nil)

				mockClient.EXPECT().
					GetProducts(2).
					Return(nil, assert.AnError)

				mockClient.EXPECT().
					GetProducts(3).
					Return(&ladditiondomain.ProductPage{
						LastPage: 3,
						Data: []ladditiondomain.ProductRecord{
							{IDProductGlobal: json.Number("3"), ProductName: "MOJITO"},
						},
					}, nil)
			},
			expected: 2,
		},
		{
			name: "Échec de la requête initiale, tout le rafraîchissement échoue",
			setup: func() {
				mockClient.EXPECT().
					GetProducts(0).
					Return(nil, assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			records, err := service.FetchAllProducts()

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, records, tt.expected)
		})
	}
}

func TestLadditionService_FindShiftDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ladditionmocks.NewMockClient(ctrl)

	service := &LadditionService{
		Client: mockClient,
	}

	tests := []struct {
		name     string
		setup    func()
		found    bool
		hasError bool
	}{
		{
			name: "Un document de service sur la fenêtre",
			setup: func() {
				mockClient.EXPECT().
					GetShiftDocuments("2026-03-14 15:00:00", "2026-03-15 06:00:00").
					Return(&ladditiondomain.ShiftDocumentsResponse{
						Data: []ladditiondomain.ShiftDocument{
							{ID: json.Number("555"), AmountTotalEVAT: 1234.56},
						},
					}, nil)
			},
			found: true,
		},
		{
			name: "Aucun document, la caisse n'a rien enregistré",
			setup: func() {
				mockClient.EXPECT().
					GetShiftDocuments("2026-03-14 15:00:00", "2026-03-15 06:00:00").
					Return(&ladditiondomain.ShiftDocumentsResponse{}, nil)
			},
			found: false,
		},
		{
			name: "Erreur du client",
			setup: func() {
				mockClient.EXPECT().
					GetShiftDocuments("2026-03-14 15:00:00", "2026-03-15 06:00:00").
					Return(nil, assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			shift, err := service.FindShiftDocument("2026-03-14 15:00:00", "2026-03-15 06:00:00")

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, shift)
			} else {
				assert.Nil(t, shift)
			}
		})
	}
}

func TestLadditionService_FetchAllSalesLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := ladditionmocks.NewMockClient(ctrl)

	service := &LadditionService{
		Client: mockClient,
	}

	tests := []struct {
		name     string
		setup    func()
		expected int
		hasError bool
	}{
		{
			name: "Toutes les pages de lignes de vente sont chargées",
			setup: func() {
				mockClient.EXPECT().
					GetSalesDocumentLines("555", 0).
					Return(&ladditiondomain.SalesLinePage{LastPage: 2}, nil)

				mockClient.EXPECT().
					GetSalesDocumentLines("555", 1).
					Return(&ladditiondomain.SalesLinePage{
						LastPage: 2,
						Data: []ladditiondomain.SalesDocumentLine{
							{IDProduct: json.Number("1"), ProductName: "Demi Blonde"},
						},
					}, nil)

				mockClient.EXPECT().
					GetSalesDocumentLines("555", 2).
					Return(&ladditiondomain.SalesLinePage{
						LastPage: 2,
						Data: []ladditiondomain.SalesDocumentLine{
							{IDProduct: json.Number("2"), ProductName: "Burger"},
						},
					}, nil)
			},
			expected: 2,
		},
		{
			name: "Une page en erreur fait échouer tout le rapatriement",
			setup: func() {
				mockClient.EXPECT().
					GetSalesDocumentLines("555", 0).
					Return(&ladditiondomain.SalesLinePage{LastPage: 2}, nil)

				mockClient.EXPECT().
					GetSalesDocumentLines("555", 1).
					Return(&ladditiondomain.SalesLinePage{LastPage: 2}, nil)

				mockClient.EXPECT().
					GetSalesDocumentLines("555", 2).
					Return(nil, assert.AnError)
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			lines, err := service.FetchAllSalesLines("555")

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, lines, tt.expected)
		})
	}
}
