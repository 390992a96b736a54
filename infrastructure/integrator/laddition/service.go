package laddition

import (
	"fmt"

	"github.com/sirupsen/logrus"

	ladditiondomain "github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/domain"
	"github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/ladditionclient"
	"github.com/cultplace/cultplace-api/internal/config"
)

type LadditionIntegrator interface {
	FetchAllProducts() ([]ladditiondomain.ProductRecord, error)
	FindShiftDocument(openingDate, closingDate string) (*ladditiondomain.ShiftDocument, error)
	FetchAllSalesLines(shiftID string) ([]ladditiondomain.SalesDocumentLine, error)
}

type LadditionService struct {
	cfg    *config.Config
	Client ladditionclient.Client
}

func New(cfg *config.Config, client ladditionclient.Client) LadditionIntegrator {
	return &LadditionService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAllProducts parcourt toutes les pages du catalogue distant. Une page en
// erreur est ignorée et journalisée : un rafraîchissement partiel du catalogue
// est acceptable. En revanche, si la requête initiale qui donne lastPage
// échoue, tout le rafraîchissement échoue.
func (s *LadditionService) FetchAllProducts() ([]ladditiondomain.ProductRecord, error) {
	firstPage, err := s.Client.GetProducts(0)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la lecture du nombre de pages du catalogue : %w", err)
	}

	records := make([]ladditiondomain.ProductRecord, 0)
	for page := 1; page <= firstPage.LastPage; page++ {
		productPage, err := s.Client.GetProducts(page)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"page":      page,
				"last_page": firstPage.LastPage,
			}).Error("Échec du chargement d'une page du catalogue, page ignorée")
			continue
		}

		records = append(records, productPage.Data...)
	}

	return records, nil
}

// FindShiftDocument retourne le premier document de service de la fenêtre
// donnée, ou nil si la caisse n'a rien enregistré ce jour-là.
func (s *LadditionService) FindShiftDocument(openingDate, closingDate string) (*ladditiondomain.ShiftDocument, error) {
	response, err := s.Client.GetShiftDocuments(openingDate, closingDate)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la recherche du document de service : %w", err)
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return &response.Data[0], nil
}

// FetchAllSalesLines parcourt toutes les pages de lignes de vente d'un
// service. Contrairement au catalogue, toute erreur de page est fatale : un
// grand livre de ventes partiel fausserait l'agrégat.
func (s *LadditionService) FetchAllSalesLines(shiftID string) ([]ladditiondomain.SalesDocumentLine, error) {
	firstPage, err := s.Client.GetSalesDocumentLines(shiftID, 0)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la lecture du nombre de pages de lignes de vente : %w", err)
	}

	lines := make([]ladditiondomain.SalesDocumentLine, 0)
	for page := 1; page <= firstPage.LastPage; page++ {
		linePage, err := s.Client.GetSalesDocumentLines(shiftID, page)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du chargement de la page %d des lignes de vente : %w", page, err)
		}

		lines = append(lines, linePage.Data...)
	}

	return lines, nil
}
