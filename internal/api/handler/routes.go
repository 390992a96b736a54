package handler

import (
	"net/http"

	"github.com/cultplace/cultplace-api/infrastructure/integrator/sowprog"
	"github.com/cultplace/cultplace-api/internal/api/handler/router"
	"github.com/cultplace/cultplace-api/internal/usecases/ingesting"
	"github.com/cultplace/cultplace-api/internal/usecases/reporting"
	"github.com/cultplace/cultplace-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Menu(service syncing.ProductSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/menu/sync",
			Method:  http.MethodPost,
			Handler: SyncMenu(service),
		},
	}
}

func Services(ingester ingesting.ShiftIngester, reporter reporting.ServiceReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodPost,
			Handler: CreateService(ingester),
		},
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: ListServices(reporter),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodGet,
			Handler: GetService(reporter),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodDelete,
			Handler: DeleteService(reporter),
		},
		{
			Path:    "/v1/services/:id/graph",
			Method:  http.MethodGet,
			Handler: GetServiceGraph(reporter),
		},
		{
			Path:    "/v1/services/:id/revenue",
			Method:  http.MethodPost,
			Handler: GetServiceRevenue(reporter),
		},
	}
}

func Concerts(service sowprog.SowprogIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/concerts",
			Method:  http.MethodGet,
			Handler: GetConcert(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
