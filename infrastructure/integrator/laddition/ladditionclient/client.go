package ladditionclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	ladditiondomain "github.com/cultplace/cultplace-api/infrastructure/integrator/laddition/domain"
	"github.com/cultplace/cultplace-api/internal/config"
)

type Client interface {
	GetProducts(page int) (*ladditiondomain.ProductPage, error)
	GetShiftDocuments(openingDate, closingDate string) (*ladditiondomain.ShiftDocumentsResponse, error)
	GetSalesDocumentLines(shiftID string, page int) (*ladditiondomain.SalesLinePage, error)
}

type LadditionClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &LadditionClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// GetProducts récupère une page du catalogue. Avec page <= 0, la requête est
// envoyée sans paramètre de pagination : la réponse sert alors à lire lastPage.
func (c *LadditionClient) GetProducts(page int) (*ladditiondomain.ProductPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprintf("%d", page))
	}

	response := &ladditiondomain.ProductPage{}
	if err := c.get("/dimproduct", query, response); err != nil {
		return nil, err
	}

	return response, nil
}

// GetShiftDocuments récupère les documents de service dont la fenêtre
// ouverture/fermeture correspond aux horodatages donnés.
func (c *LadditionClient) GetShiftDocuments(openingDate, closingDate string) (*ladditiondomain.ShiftDocumentsResponse, error) {
	query := url.Values{}
	query.Set("opening_date", openingDate)
	query.Set("closing_date", closingDate)

	response := &ladditiondomain.ShiftDocumentsResponse{}
	if err := c.get("/ShiftDocuments", query, response); err != nil {
		return nil, err
	}

	return response, nil
}

// GetSalesDocumentLines récupère une page des lignes de vente d'un service.
// Même convention que GetProducts : page <= 0 sert à lire lastPage.
func (c *LadditionClient) GetSalesDocumentLines(shiftID string, page int) (*ladditiondomain.SalesLinePage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprintf("%d", page))
	}

	response := &ladditiondomain.SalesLinePage{}
	if err := c.get(fmt.Sprintf("/ShiftDocuments/%s/SalesDocumentLines", shiftID), query, response); err != nil {
		return nil, err
	}

	return response, nil
}

func (c *LadditionClient) get(endpointPath string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Laddition.URL)
	if err != nil {
		return fmt.Errorf("erreur lors de l'analyse de l'URL de base : %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erreur lors de la création de la requête : %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Laddition.AuthToken)
	req.Header.Set("customerid", c.config.Laddition.CustomerID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erreur lors de l'exécution de la requête : %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("la requête a échoué avec le statut : %s", resp.Status)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("erreur lors du décodage de la réponse : %w", err)
	}

	return nil
}
