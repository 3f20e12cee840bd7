package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ledger-api/infrastructure/cache"
	"github.com/vfg2006/ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-api/infrastructure/repository"
	"github.com/vfg2006/ledger-api/internal/config"
	"github.com/vfg2006/ledger-api/internal/domain"
	"github.com/vfg2006/ledger-api/pkg/log"
	"github.com/vfg2006/ledger-api/pkg/utils"
)

type importOptions struct {
	file   string
	userID int
}

func newImportCmd() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Valida um CSV de lançamentos e grava no PostgreSQL",
		Long: `Valida todas as linhas antes de gravar; qualquer linha inválida
cancela a importação. A gravação acontece em uma única transação.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Arquivo CSV de lançamentos")
	cmd.Flags().IntVar(&opts.userID, "user-id", 0, "Usuário dono dos lançamentos")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func runImport(ctx context.Context, out io.Writer, opts *importOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.userID <= 0 {
		return errors.New("--user-id deve ser positivo")
	}

	entries, err := readEntriesFile(opts.file)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	var imported int
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		n, importErr := importEntries(ctx, repository.NewEntryRepository(tx), opts.userID, entries, utils.GenerateID)
		imported = n
		return importErr
	})
	if err != nil {
		return err
	}

	invalidateReports(ctx, cfg.Redis, opts.userID)

	fmt.Fprintf(out, "%d lançamentos importados para o usuário %d\n", imported, opts.userID)
	return nil
}

// importEntries grava os lançamentos já validados; o primeiro erro interrompe a importação
func importEntries(
	ctx context.Context,
	repo repository.EntryRepository,
	userID int,
	entries []domain.Entry,
	newID func() (string, error),
) (int, error) {
	startTime := time.Now()
	logger := log.ForContext(ctx).WithField("user_id", userID)

	for i := range entries {
		id, err := newID()
		if err != nil {
			return i, fmt.Errorf("erro ao gerar id: %w", err)
		}

		entry := entries[i]
		entry.ID = id
		entry.UserID = userID

		if err := repo.Create(ctx, &entry); err != nil {
			return i, fmt.Errorf("erro ao inserir lançamento %d/%d (%s): %w", i+1, len(entries), entry.CustomerName, err)
		}

		if i > 0 && i%100 == 0 {
			logger.Infof("Progresso: %d/%d lançamentos gravados", i, len(entries))
		}
	}

	logger.Infof("Importação concluída em %v: %d lançamentos", time.Since(startTime), len(entries))
	return len(entries), nil
}

// invalidateReports incrementa a versão do livro para descartar relatórios em cache
func invalidateReports(ctx context.Context, redisConfig config.Redis, userID int) {
	if !redisConfig.Enabled {
		return
	}

	client, err := cache.NewRedisClient(ctx, redisConfig)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Redis indisponível, cache de relatórios não invalidado")
		return
	}
	defer client.Close()

	if _, err := cache.NewReportCache(client, redisConfig.CacheTTL).BumpVersion(ctx, userID); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível invalidar o cache de relatórios")
	}
}
