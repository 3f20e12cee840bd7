package aggregation

import (
	"github.com/vfg2006/ledger-api/internal/domain"
)

// Filter retorna os lançamentos que atendem a todos os filtros, preservando a ordem.
// Start e End são comparados lexicalmente (YYYY-MM-DD). Um id de faixa
// desconhecido não restringe o valor; a validação fica com a borda.
func Filter(entries []domain.Entry, cfg domain.FilterConfig) []domain.Entry {
	bracket, hasBracket := domain.AmountBracket{}, false
	if cfg.HasAmountRange() {
		bracket, hasBracket = domain.FindAmountBracket(cfg.AmountRange)
	}

	out := make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		if cfg.Start != "" && e.OccurredOn < cfg.Start {
			continue
		}
		if cfg.End != "" && e.OccurredOn > cfg.End {
			continue
		}
		if cfg.HasCustomer() && e.CustomerName != cfg.Customer {
			continue
		}
		if cfg.HasKind() && e.Kind != cfg.Kind {
			continue
		}
		if hasBracket && !bracket.Contains(e.Amount) {
			continue
		}
		out = append(out, e)
	}

	return out
}
