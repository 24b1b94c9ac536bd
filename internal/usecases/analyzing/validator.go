package analyzing

import (
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/pkg/apiErrors"
)

// validateSnapshot confirma que o snapshot carrega os dois dias necessários
// para a análise. Apenas presença é verificada: campos numéricos negativos ou
// fracionários seguem adiante sem ajuste.
func validateSnapshot(snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return NewAnalysisError(ErrMissingSnapshot, apiErrors.ErrMissingRequiredData, "snapshot with 'today' and 'yesterday' required")
	}

	if snapshot.Today == nil {
		return NewAnalysisError(ErrMissingToday, apiErrors.ErrMissingRequiredData, "'today' metrics missing from snapshot")
	}

	if snapshot.Yesterday == nil {
		return NewAnalysisError(ErrMissingYesterday, apiErrors.ErrMissingRequiredData, "'yesterday' metrics missing from snapshot")
	}

	return nil
}
