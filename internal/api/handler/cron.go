package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ledger-api/pkg/apiErrors"
	"github.com/vfg2006/ledger-api/pkg/log"
)

// Tipos de cron job aceitos na execução manual
const (
	CronJobTypeMonthlySummaries = "monthly-summaries"
	CronJobTypeAll              = "all"
)

// SyncTrigger é implementado pelos agendadores em internal/scheduler
type SyncTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlySummarySync SyncTrigger
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		var started bool
		switch cronType {
		case CronJobTypeMonthlySummaries, CronJobTypeAll:
			if services.MonthlySummarySync == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de consolidação mensal não disponível", nil)
				return
			}
			started = services.MonthlySummarySync.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-summaries, all", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		logger.WithField("cron_type", cronType).Info(message)

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MonthlySummarySync != nil {
			status[CronJobTypeMonthlySummaries] = services.MonthlySummarySync.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
