package bookkeeping

import (
	"context"
	"errors"

	"github.com/vfg2006/ledger-api/infrastructure/cache"
	"github.com/vfg2006/ledger-api/infrastructure/repository"
	"github.com/vfg2006/ledger-api/internal/aggregation"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/log"
	"github.com/vfg2006/ledger-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Bookkeeper interface {
	CreateEntry(ctx context.Context, userID int, input domain.EntryInput) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, userID int, id string, input domain.EntryInput) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, userID int, id string) error
	ChangeSettlement(ctx context.Context, userID int, id string, status domain.SettlementStatus) (*domain.Entry, error)
	ListEntries(ctx context.Context, userID int, cfg domain.FilterConfig) ([]domain.Entry, error)
	ListCustomers(ctx context.Context, userID int) ([]string, error)
}

type Service struct {
	entries repository.EntryRepository
	cache   cache.ReportCache
	newID   func() (string, error)
}

func NewService(entries repository.EntryRepository, reportCache cache.ReportCache) *Service {
	return &Service{
		entries: entries,
		cache:   reportCache,
		newID:   utils.GenerateID,
	}
}

func (s *Service) CreateEntry(ctx context.Context, userID int, input domain.EntryInput) (*domain.Entry, error) {
	entry, err := ValidateInput(input)
	if err != nil {
		return nil, newValidationError(err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, newDatabaseError(err, "")
	}

	entry.ID = id
	entry.UserID = userID

	if err := s.entries.Create(ctx, &entry); err != nil {
		return nil, newDatabaseError(err, id)
	}

	s.bumpVersion(ctx, userID)

	log.ForContext(ctx).WithFields(log.Fields{
		"entry_id": entry.ID,
		"user_id":  userID,
	}).Info("Lançamento criado")

	return &entry, nil
}

// UpdateEntry substitui os dados do lançamento. As flags de liquidação só
// sobrevivem quando o tipo não muda.
func (s *Service) UpdateEntry(ctx context.Context, userID int, id string, input domain.EntryInput) (*domain.Entry, error) {
	entry, err := ValidateInput(input)
	if err != nil {
		return nil, newValidationError(err)
	}

	current, err := s.findEntry(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry.ID = current.ID
	entry.UserID = userID
	entry.CreatedAt = current.CreatedAt

	if current.Kind == entry.Kind {
		entry.PaymentCompleted = entry.Kind == domain.EntryKindCost && current.PaymentCompleted
		entry.DepositCompleted = entry.Kind == domain.EntryKindSales && current.DepositCompleted
	}

	if err := s.entries.Update(ctx, &entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		return nil, newDatabaseError(err, id)
	}

	s.bumpVersion(ctx, userID)

	log.ForContext(ctx).WithFields(log.Fields{
		"entry_id": entry.ID,
		"user_id":  userID,
	}).Info("Lançamento atualizado")

	return &entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, userID int, id string) error {
	if err := s.entries.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return newNotFoundError(id)
		}
		return newDatabaseError(err, id)
	}

	s.bumpVersion(ctx, userID)

	log.ForContext(ctx).WithFields(log.Fields{
		"entry_id": id,
		"user_id":  userID,
	}).Info("Lançamento excluído")

	return nil
}

// ChangeSettlement marca o recebimento (売上) ou o pagamento (原価) do lançamento
func (s *Service) ChangeSettlement(ctx context.Context, userID int, id string, status domain.SettlementStatus) (*domain.Entry, error) {
	entry, err := s.findEntry(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	completed := status == domain.SettlementCompleted
	switch entry.Kind {
	case domain.EntryKindCost:
		entry.PaymentCompleted = completed
	default:
		entry.DepositCompleted = completed
	}

	if err := s.entries.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		return nil, newDatabaseError(err, id)
	}

	s.bumpVersion(ctx, userID)

	log.ForContext(ctx).WithFields(log.Fields{
		"entry_id": id,
		"user_id":  userID,
	}).Infof("Liquidação alterada para %s", domain.SettlementLabel(entry.Kind, completed))

	return entry, nil
}

// ListEntries devolve os lançamentos filtrados na ordem da listagem
func (s *Service) ListEntries(ctx context.Context, userID int, cfg domain.FilterConfig) ([]domain.Entry, error) {
	entries, err := s.entries.ListByUser(ctx, userID, cfg.Start, cfg.End)
	if err != nil {
		return nil, newDatabaseError(err, "")
	}

	return aggregation.SortForListing(aggregation.Filter(entries, cfg)), nil
}

func (s *Service) ListCustomers(ctx context.Context, userID int) ([]string, error) {
	entries, err := s.entries.ListByUser(ctx, userID, "", "")
	if err != nil {
		return nil, newDatabaseError(err, "")
	}

	return aggregation.CustomerOptions(entries), nil
}

func (s *Service) findEntry(ctx context.Context, userID int, id string) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, newDatabaseError(err, id)
	}
	if entry == nil {
		return nil, newNotFoundError(id)
	}
	return entry, nil
}

// bumpVersion invalida os relatórios em cache do usuário; falhas só são registradas
func (s *Service) bumpVersion(ctx context.Context, userID int) {
	if _, err := s.cache.BumpVersion(ctx, userID); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Warn("Não foi possível invalidar o cache de relatórios")
	}
}
