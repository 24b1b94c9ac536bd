package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/business-pulse-api/internal/domain"
	"github.com/vfg2006/business-pulse-api/internal/usecases/analyzing"
	"github.com/vfg2006/business-pulse-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/business-pulse-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAnalyzeSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	tests := []struct {
		name           string
		body           string
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Snapshot válido - retorna o resultado da análise",
			body: `{"today":{"sales":1000,"costs":800,"customers":50},"yesterday":{"sales":900,"costs":750,"customers":45}}`,
			setup: func() {
				mockAnalyzer.EXPECT().
					Analyze(gomock.Any()).
					DoAndReturn(func(snapshot *domain.Snapshot) (*domain.Outcome, error) {
						assert.NotNil(t, snapshot.Today)
						assert.NotNil(t, snapshot.Yesterday)
						assert.Equal(t, 1000.0, snapshot.Today.Sales)
						assert.Equal(t, 45, snapshot.Yesterday.Customers)

						return &domain.Outcome{
							ProfitStatus:    "Profit: $200.00",
							Alerts:          []string{},
							Recommendations: []string{"Consider increasing advertising budget due to 11.11% sales growth"},
						}, nil
					})
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var outcome domain.Outcome
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
				assert.Equal(t, "Profit: $200.00", outcome.ProfitStatus)
				assert.NotNil(t, outcome.Alerts)
				assert.Len(t, outcome.Recommendations, 1)

				// Listas vazias serializam como [], nunca como null
				assert.Contains(t, rec.Body.String(), `"alerts":[]`)
			},
		},
		{
			name: "Snapshot sem os dois dias - retorna 400 com código de validação",
			body: `{}`,
			setup: func() {
				mockAnalyzer.EXPECT().
					Analyze(gomock.Any()).
					Return(nil, analyzing.NewAnalysisError(
						analyzing.ErrMissingToday,
						apiErrors.ErrMissingRequiredData,
						"'today' metrics missing from snapshot",
					))
			},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var apiErr apiErrors.APIError
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
			},
		},
		{
			name:           "Corpo inválido - retorna 400 sem invocar o pipeline",
			body:           `{"today":`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var apiErr apiErrors.APIError
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/v1/analysis", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			AnalyzeSnapshot(mockAnalyzer).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec)
		})
	}
}
