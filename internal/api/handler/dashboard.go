package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/unleashed/unleashedclient"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	defaultRankingLimit = 10
	maxRankingLimit     = 50
)

// GetDashboard retorna o relatório completo do dashboard para o período
// informado. Sem parâmetros, o período é o mês corrente.
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": period.Label(),
			"type":   string(period.Type),
		}).Info("dashboard: montando relatório do período")

		report, err := service.GetDashboard(r.Context(), period)
		if err != nil {
			handleReportingError(w, logger, err, period)
			return
		}

		logger.WithFields(log.Fields{
			"period":        period.Label(),
			"orders":        report.Overview.OrderCount,
			"top_customers": len(report.TopCustomers),
		}).Info("dashboard: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetDashboardPeriods retorna os períodos selecionáveis no dashboard
func GetDashboardPeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao listar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar períodos disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetTopCustomers retorna o ranking de clientes por receita do período
func GetTopCustomers(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		customers, err := service.GetTopCustomers(r.Context(), period, limit)
		if err != nil {
			handleReportingError(w, logger, err, period)
			return
		}

		logger.WithFields(log.Fields{
			"period":    period.Label(),
			"customers": len(customers),
		}).Info("dashboard: ranking de clientes gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"period":    period.Label(),
			"customers": customers,
		}); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetTopProducts retorna o ranking de produtos por receita do período
func GetTopProducts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		products, err := service.GetTopProducts(r.Context(), period, limit)
		if err != nil {
			handleReportingError(w, logger, err, period)
			return
		}

		logger.WithFields(log.Fields{
			"period":   period.Label(),
			"products": len(products),
		}).Info("dashboard: ranking de produtos gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"period":   period.Label(),
			"products": products,
		}); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetSalespersonPerformance retorna o desempenho dos vendedores no
// período com o comparativo do período anterior
func GetSalespersonPerformance(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := parsePeriod(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		salespersons, err := service.GetSalespersonPerformance(r.Context(), period)
		if err != nil {
			handleReportingError(w, logger, err, period)
			return
		}

		logger.WithFields(log.Fields{
			"period":       period.Label(),
			"salespersons": len(salespersons),
		}).Info("dashboard: desempenho de vendedores gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"period":       period.Label(),
			"salespersons": salespersons,
		}); err != nil {
			logger.WithError(err).Error("dashboard: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parsePeriod resolve o período da query string. O rótulo explícito em
// "period" tem prioridade; sem ele, "type" seleciona o mês ou trimestre
// corrente, e o padrão é o mês corrente.
func parsePeriod(r *http.Request) (domain.Period, error) {
	query := r.URL.Query()

	if label := query.Get("period"); label != "" {
		return domain.ParsePeriod(label)
	}

	periodType := domain.PeriodMonthly
	switch query.Get("type") {
	case "", string(domain.PeriodMonthly):
	case string(domain.PeriodQuarterly):
		periodType = domain.PeriodQuarterly
	default:
		return domain.Period{}, fmt.Errorf("tipo de período inválido: %q", query.Get("type"))
	}

	return domain.CurrentPeriod(periodType, time.Now()), nil
}

// parseLimit resolve o tamanho dos rankings, limitado ao máximo permitido
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultRankingLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limite inválido: %q", raw)
	}

	if limit > maxRankingLimit {
		limit = maxRankingLimit
	}

	return limit, nil
}

// handleReportingError traduz as falhas da API externa para os códigos
// de erro da API
func handleReportingError(w http.ResponseWriter, logger log.Logger, err error, period domain.Period) {
	var authFailed *unleashedclient.AuthenticationFailedError
	if errors.As(err, &authFailed) {
		logger.WithError(err).Error("dashboard: credenciais rejeitadas pela API externa")
		apiErrors.WriteError(w, apiErrors.ErrRemoteAuthentication, "Credenciais rejeitadas pela API externa de vendas", nil)
		return
	}

	var unavailable *unleashedclient.RemoteUnavailableError
	if errors.As(err, &unavailable) {
		logger.WithError(err).WithFields(log.Fields{
			"period": period.Label(),
		}).Error("dashboard: API externa indisponível")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "API externa de vendas indisponível, tente novamente", map[string]any{
			"period": period.Label(),
		})
		return
	}

	logger.WithError(err).WithFields(log.Fields{
		"period": period.Label(),
	}).Error("dashboard: erro ao montar o relatório")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o relatório", nil)
}
