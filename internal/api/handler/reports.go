package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
)

func GetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		filters, err := parseFilters(query)
		if err != nil {
			writeFilterError(w, err)
			return
		}

		req := reporting.NewReportRequest(filters, query.Get("view"), query.Get("period"))

		report, err := service.GetReport(r.Context(), claims.UserID, req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

// GetMonthlySummaries lista os snapshots mensais do ano; sem ano usa o ano corrente
func GetMonthlySummaries(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		year := time.Now().UTC().Year()
		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido", nil)
				return
			}
			year = parsed
		}

		summaries, err := service.GetMonthlySummaries(r.Context(), claims.UserID, year)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		if summaries == nil {
			summaries = []domain.MonthlySummary{}
		}

		writeJSON(w, r, http.StatusOK, summaries)
	}
}
