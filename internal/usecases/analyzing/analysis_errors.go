package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise
var (
	// Erros de validação — o chamador deve tratá-los como entrada inválida,
	// nunca como falha interna do pipeline
	ErrMissingSnapshot  = errors.New("snapshot is required")
	ErrMissingToday     = errors.New("today metrics are required")
	ErrMissingYesterday = errors.New("yesterday metrics are required")
)

// IsInvalidInputError verifica se o erro é uma falha de validação de entrada
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrMissingSnapshot) ||
		errors.Is(err, ErrMissingToday) ||
		errors.Is(err, ErrMissingYesterday)
}

// AnalysisError é um erro com contexto adicional para análises
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
