package sowprogclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	sowprogdomain "github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog/domain"
	"github.com/cultplace/cultplace-api/internal/config"
)

type Client interface {
	SearchScheduledEvents(date time.Time) (*sowprogdomain.SearchResponse, error)
}

type SowprogClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &SowprogClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// SearchScheduledEvents interroge l'agenda SowProg pour la date donnée,
// événements passés compris.
func (c *SowprogClient) SearchScheduledEvents(date time.Time) (*sowprogdomain.SearchResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Sowprog.URL)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'analyse de l'URL de base : %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/scheduledEventsSplitByDate/search")

	query := endpoint.Query()
	query.Set("eventScheduleDate.date", date.Format(time.DateOnly))
	query.Set("past_events", "True")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la requête : %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.config.Sowprog.Email, c.config.Sowprog.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'exécution de la requête : %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("la requête a échoué avec le statut : %s", resp.Status)
	}

	response := &sowprogdomain.SearchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erreur lors du décodage de la réponse : %w", err)
	}

	return response, nil
}
