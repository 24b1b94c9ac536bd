package handler

import (
	"net/http"

	"github.com/vfg2006/business-pulse-api/internal/api/handler/router"
	"github.com/vfg2006/business-pulse-api/internal/usecases/analyzing"
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

func Analysis(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis",
			Method:  http.MethodPost,
			Handler: AnalyzeSnapshot(service),
		},
	}
}
