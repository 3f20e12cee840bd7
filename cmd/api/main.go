package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ledger-api/infrastructure/cache"
	"github.com/vfg2006/ledger-api/infrastructure/database/migrations"
	"github.com/vfg2006/ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/ledger-api/infrastructure/repository"
	"github.com/vfg2006/ledger-api/internal/api"
	"github.com/vfg2006/ledger-api/internal/config"
	"github.com/vfg2006/ledger-api/internal/scheduler"
	"github.com/vfg2006/ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/ledger-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/ledger-api/internal/usecases/reporting"
	"github.com/vfg2006/ledger-api/pkg/log"
	"github.com/vfg2006/ledger-api/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migrations.Run(pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	reportCache := newReportCache(ctx, cfg.Redis)
	metricsRegistry := metrics.NewRegistry()

	userRepo := repository.NewUserRepository(pgConn)
	entryRepo := repository.NewEntryRepository(pgConn)
	summaryRepo := repository.NewMonthlySummaryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	bookkeeper := bookkeeping.NewService(entryRepo, reportCache)
	reporter := reporting.NewService(entryRepo, summaryRepo, reportCache, metricsRegistry)

	monthlySummarySync := scheduler.NewMonthlySummarySyncService(
		userRepo,
		reporter,
		metricsRegistry,
		cfg.MonthlySummarySync,
	)

	if err := monthlySummarySync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumos mensais")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:      authenticator,
		Bookkeeper:         bookkeeper,
		Reporter:           reporter,
		MonthlySummarySync: monthlySummarySync,
		Database:           pgConn,
		Metrics:            metricsRegistry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newReportCache usa o Redis quando habilitado; sem Redis os relatórios são sempre recalculados
func newReportCache(ctx context.Context, redisConfig config.Redis) cache.ReportCache {
	if !redisConfig.Enabled {
		logrus.Info("Cache de relatórios desabilitado")
		return cache.NewNoopReportCache()
	}

	client, err := cache.NewRedisClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de relatórios")
		return cache.NewNoopReportCache()
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Cache de relatórios no Redis habilitado")
	return cache.NewReportCache(client, redisConfig.CacheTTL)
}
