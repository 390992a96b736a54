package imagecharts

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultplace/cultplace-api/internal/config"
)

func TestImageChartsClient_PieChartURL(t *testing.T) {
	client := NewClient(&config.Config{
		ImageCharts: config.ImageCharts{
			URL: "https://image-charts.com/chart",
		},
	})

	chartURL, err := client.PieChartURL(PieChartSpec{
		Values:      []int{12, 7, 3},
		Labels:      []string{"Demi Blonde", "MOJITO", "SPRITZ"},
		InsideLabel: "845.50 €",
		Title:       "LIQUIDES HT (TOP 5)",
	})
	require.NoError(t, err)

	parsed, err := url.Parse(chartURL)
	require.NoError(t, err)
	assert.Equal(t, "image-charts.com", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "pd", query.Get("cht"))
	assert.Equal(t, "t:12,7,3", query.Get("chd"))
	assert.Equal(t, "Demi Blonde|MOJITO|SPRITZ", query.Get("chdl"))
	assert.Equal(t, "845.50 €", query.Get("chli"))
	assert.Equal(t, "12|7|3", query.Get("chl"))
	assert.Equal(t, "LIQUIDES HT (TOP 5)", query.Get("chtt"))
	assert.Equal(t, "l", query.Get("chdlp"))
	assert.Equal(t, "400x200", query.Get("chs"))
}

func TestImageChartsClient_PieChartURLEmptySpec(t *testing.T) {
	client := NewClient(&config.Config{
		ImageCharts: config.ImageCharts{
			URL: "https://image-charts.com/chart",
		},
	})

	chartURL, err := client.PieChartURL(PieChartSpec{})
	require.NoError(t, err)

	parsed, err := url.Parse(chartURL)
	require.NoError(t, err)
	assert.Equal(t, "t:", parsed.Query().Get("chd"))
}
