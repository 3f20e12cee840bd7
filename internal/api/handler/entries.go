package handler

import (
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
)

type SettlementRequest struct {
	Status string `json:"status"`
}

// parseFilters lê os filtros da query string; valores vazios ou "all" desativam o filtro
func parseFilters(query url.Values) (domain.FilterConfig, error) {
	cfg := domain.FilterConfig{
		Start:       query.Get("start"),
		End:         query.Get("end"),
		Customer:    query.Get("customer"),
		Kind:        domain.EntryKind(query.Get("entry_type")),
		AmountRange: query.Get("amount_range"),
	}

	return cfg, cfg.Validate()
}

func writeFilterError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidDateRange) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}

func ListEntries(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			writeFilterError(w, err)
			return
		}

		entries, err := service.ListEntries(r.Context(), claims.UserID, filters)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		if entries == nil {
			entries = []domain.Entry{}
		}

		writeJSON(w, r, http.StatusOK, entries)
	}
}

func CreateEntry(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var input domain.EntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.CreateEntry(r.Context(), claims.UserID, input)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, entry)
	}
}

func UpdateEntry(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.EntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry, err := service.UpdateEntry(r.Context(), claims.UserID, id, input)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, entry)
	}
}

func DeleteEntry(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteEntry(r.Context(), claims.UserID, id); err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ChangeSettlement marca o lançamento como liquidado (入金済み/支払済み) ou pendente
func ChangeSettlement(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SettlementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		status, err := domain.ParseSettlementStatus(req.Status)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status deve ser pending ou completed", nil)
			return
		}

		entry, err := service.ChangeSettlement(r.Context(), claims.UserID, id, status)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, entry)
	}
}

func ListCustomers(service bookkeeping.Bookkeeper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		customers, err := service.ListCustomers(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		if customers == nil {
			customers = []string{}
		}

		writeJSON(w, r, http.StatusOK, customers)
	}
}

// ListAmountBrackets devolve a tabela de faixas de valor usada nos filtros
func ListAmountBrackets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.AmountBrackets())
	}
}
