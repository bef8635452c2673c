package app

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skynet2/fio-ynab-importer/pkg/config"
	"github.com/skynet2/fio-ynab-importer/pkg/duplicatecleaner"
	"github.com/skynet2/fio-ynab-importer/pkg/fio"
	"github.com/skynet2/fio-ynab-importer/pkg/notifications"
	"github.com/skynet2/fio-ynab-importer/pkg/printer"
	"github.com/skynet2/fio-ynab-importer/pkg/processor"
	"github.com/skynet2/fio-ynab-importer/pkg/repo"
	"github.com/skynet2/fio-ynab-importer/pkg/vault"
)

// Store is what every storage backend in pkg/repo provides.
type Store interface {
	processor.TransactionRepo
	processor.ImportBatchRepo
	processor.ProcessingStateRepo
	duplicatecleaner.Repo
	vault.Repo
}

type App struct {
	Processor *processor.Processor
	Reporter  *notifications.Reporter
	Vault     *vault.Vault
	Store     Store
}

// New wires the import pipeline once. bankHTTP carries the Fio calls and gets
// the retry policy applied; nil means a fresh client.
func New(
	ctx context.Context,
	cfg *config.Config,
	bankHTTP *req.Client,
) (*App, error) {
	store, err := NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache, err := vault.NewTokenCache(cfg.TokenCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token cache")
	}

	if bankHTTP == nil {
		bankHTTP = req.C()
	}

	tokenVault := vault.NewVault(store, cache, cfg.TokenEncryptionKey)

	bankClient := fio.NewClient(bankHTTP, fio.Config{
		BaseURL:         cfg.FioApiURL,
		Timeout:         cfg.FioTimeout,
		RetryCount:      cfg.FioRetryCount,
		RetryBackoffMin: cfg.FioRetryBackoffMin,
		RetryBackoffMax: cfg.FioRetryBackoffMax,
	})

	proc := processor.NewProcessor(&processor.Config{
		TransactionRepo:     store,
		ImportBatchRepo:     store,
		ProcessingStateRepo: store,
		Vault:               tokenVault,
		BankClient:          bankClient,
		Mapper:              fio.NewMapper(),
		DuplicateCleaner:    duplicatecleaner.NewDuplicateCleaner(store, cfg.DedupPoolSize),
	})

	var sender notifications.Sender
	if cfg.TelegramBotToken != "" {
		sender = notifications.NewTelegram(cfg.TelegramBotToken, req.C())
	}

	return &App{
		Processor: proc,
		Reporter:  notifications.NewReporter(sender, printer.NewPrinter(), cfg.TelegramChatID),
		Vault:     tokenVault,
		Store:     store,
	}, nil
}

func NewStore(
	ctx context.Context,
	cfg *config.Config,
) (Store, error) {
	switch cfg.Storage {
	case config.StorageCosmos:
		client, err := newCosmosClient(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create cosmos client")
		}

		return repo.NewCosmo(client, cfg.CosmoDbName)
	case config.StoragePostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get postgres")
		}

		return repo.NewPostgres(db), nil
	case config.StorageMemory, "":
		zerolog.Ctx(ctx).Warn().Msg("using in-memory storage, data is lost on exit")

		return repo.NewMemDB()
	default:
		return nil, errors.Newf("unknown storage %q", cfg.Storage)
	}
}

// a connection string wins; otherwise the default azure credential chain is
// used against the endpoint.
func newCosmosClient(cfg *config.Config) (*azcosmos.Client, error) {
	if cfg.CosmoDbConnectionString != "" {
		return azcosmos.NewClientFromConnectionString(cfg.CosmoDbConnectionString, nil)
	}

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}

	return azcosmos.NewClient(cfg.CosmoDbEndpoint, credential, &azcosmos.ClientOptions{
		EnableContentResponseOnWrite: true,
	})
}

func NewLogger(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.LogPretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
