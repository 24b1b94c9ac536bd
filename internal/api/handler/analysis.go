package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-pulse-api/pkg/apiErrors"
	"github.com/vfg2006/business-pulse-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalyzeSnapshot recebe o par hoje/ontem no corpo da requisição, roda o
// pipeline de análise e devolve o resultado com status, alertas e
// recomendações
func AnalyzeSnapshot(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var snapshot domain.Snapshot
		if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
			err = errors.Wrap(err, "decoding analysis request body")
			logger.WithError(err).Warn("analysis: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "corpo da requisição inválido", err.Error())
			return
		}

		outcome, err := service.Analyze(&snapshot)
		if err != nil {
			if analyzing.IsInvalidInputError(err) {
				logger.WithError(err).Warn("analysis: snapshot failed validation")

				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("analysis: failed to analyze snapshot")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "erro ao processar análise", nil)
			return
		}

		logger.WithFields(log.Fields{
			"profit_status":   outcome.ProfitStatus,
			"alerts":          len(outcome.Alerts),
			"recommendations": len(outcome.Recommendations),
		}).Info("analysis: snapshot analyzed successfully")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(outcome); err != nil {
			logger.WithError(err).Error("analysis: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
