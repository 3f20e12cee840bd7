package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ledger-api/internal/config"
	"github.com/vfg2006/ledger-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	versionKeyPrefix = "ledger:version:"
	reportKeyPrefix  = "report:"
)

// ReportCache guarda relatórios calculados, indexados pela versão do livro do usuário.
// Qualquer escrita incrementa a versão e invalida os relatórios anteriores.
//
//go:generate mockgen -source=report_cache.go -destination=mocks/report_cache_mock.go -package=mocks
type ReportCache interface {
	Version(ctx context.Context, userID int) (int64, error)
	BumpVersion(ctx context.Context, userID int) (int64, error)
	GetReport(ctx context.Context, userID int, version int64, request any) (*domain.Report, bool, error)
	SetReport(ctx context.Context, userID int, version int64, request any, report *domain.Report) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient cria o cliente e verifica a conexão
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar no redis: %w", err)
	}

	return client, nil
}

func NewReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}
}

func versionKey(userID int) string {
	return fmt.Sprintf("%s%d", versionKeyPrefix, userID)
}

// ReportKey monta a chave report:<usuário>:<versão>:<hash da requisição>
func ReportKey(userID int, version int64, request any) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s%d:%d:%s", reportKeyPrefix, userID, version, hex.EncodeToString(sum[:8])), nil
}

func (c *redisReportCache) Version(ctx context.Context, userID int) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("erro ao ler versão do livro: %w", err)
	}
	return version, nil
}

func (c *redisReportCache) BumpVersion(ctx context.Context, userID int) (int64, error) {
	version, err := c.client.Incr(ctx, versionKey(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("erro ao incrementar versão do livro: %w", err)
	}
	return version, nil
}

func (c *redisReportCache) GetReport(ctx context.Context, userID int, version int64, request any) (*domain.Report, bool, error) {
	key, err := ReportKey(userID, version, request)
	if err != nil {
		return nil, false, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("erro ao ler relatório do cache: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar relatório do cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetReport(ctx context.Context, userID int, version int64, request any, report *domain.Report) error {
	key, err := ReportKey(userID, version, request)
	if err != nil {
		return err
	}

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar relatório no cache: %w", err)
	}

	return nil
}

// noopReportCache é usado quando o cache está desabilitado
type noopReportCache struct{}

func NewNoopReportCache() ReportCache {
	return noopReportCache{}
}

func (noopReportCache) Version(context.Context, int) (int64, error) { return 0, nil }

func (noopReportCache) BumpVersion(context.Context, int) (int64, error) { return 0, nil }

func (noopReportCache) GetReport(context.Context, int, int64, any) (*domain.Report, bool, error) {
	return nil, false, nil
}

func (noopReportCache) SetReport(context.Context, int, int64, any, *domain.Report) error { return nil }
