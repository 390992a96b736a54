package imagecharts

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cultplace/cultplace-api/internal/config"
)

// PieChartSpec décrit le camembert demandé au service image-charts.
type PieChartSpec struct {
	Values      []int    // quantités, dans l'ordre des labels
	Labels      []string // légende
	InsideLabel string   // texte au centre du camembert (total en euros)
	Title       string
}

type Renderer interface {
	// PieChartURL construit l'URL de l'image du camembert. Le rendu est fait
	// par le service distant au moment où l'URL est consultée : aucune
	// requête n'est émise ici.
	PieChartURL(spec PieChartSpec) (string, error)
}

type ImageChartsClient struct {
	config *config.Config
}

func NewClient(cfg *config.Config) Renderer {
	return &ImageChartsClient{
		config: cfg,
	}
}

func (c *ImageChartsClient) PieChartURL(spec PieChartSpec) (string, error) {
	endpoint, err := url.Parse(c.config.ImageCharts.URL)
	if err != nil {
		return "", fmt.Errorf("erreur lors de l'analyse de l'URL de base : %w", err)
	}

	values := make([]string, 0, len(spec.Values))
	for _, value := range spec.Values {
		values = append(values, strconv.Itoa(value))
	}

	query := endpoint.Query()
	query.Set("cht", "pd")
	query.Set("chd", "t:"+strings.Join(values, ","))
	query.Set("chdl", strings.Join(spec.Labels, "|"))
	query.Set("chli", spec.InsideLabel)
	query.Set("chl", strings.Join(values, "|"))
	query.Set("chtt", spec.Title)
	query.Set("chdlp", "l")
	query.Set("chs", "400x200")
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}
