package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/ledger-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-api/pkg/log"
	"github.com/vfg2006/ledger-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// currentUser obtém as claims do token; responde 401 quando ausentes
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return claims, ok
}

// writeUsecaseError traduz os erros tipados dos casos de uso para a resposta da API
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var entryErr *bookkeeping.EntryError
	if errors.As(err, &entryErr) {
		if entryErr.Code == apiErrors.ErrDatabaseOperation {
			logger.Error("Erro no banco ao processar lançamento")
			apiErrors.WriteError(w, entryErr.Code, "Erro ao processar lançamento", nil)
			return
		}
		apiErrors.WriteError(w, entryErr.Code, entryErr.Err.Error(), entryDetails(entryErr))
		return
	}

	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		if reportErr.Code == apiErrors.ErrDatabaseOperation {
			logger.Error("Erro no banco ao gerar relatório")
			apiErrors.WriteError(w, reportErr.Code, "Erro ao gerar relatório", nil)
			return
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Err.Error(), nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authErr.Code == apiErrors.ErrDatabaseOperation || authErr.Code == apiErrors.ErrInternalServer {
			logger.Error("Erro interno na autenticação")
			apiErrors.WriteError(w, authErr.Code, "Erro ao processar autenticação", nil)
			return
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logger.Error("Erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}

func entryDetails(err *bookkeeping.EntryError) any {
	if err.EntryID == "" {
		return nil
	}
	return map[string]string{"entry_id": err.EntryID}
}
