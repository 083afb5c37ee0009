package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/hedera-wallet-cli/internal/adapters/evmabi"
	"github.com/bnema/hedera-wallet-cli/internal/adapters/logging"
	promobserver "github.com/bnema/hedera-wallet-cli/internal/adapters/metrics/prometheus"
	resultadapter "github.com/bnema/hedera-wallet-cli/internal/adapters/render/result"
	tomlrepo "github.com/bnema/hedera-wallet-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/hedera-wallet-cli/internal/adapters/secrets/chain"
	"github.com/bnema/hedera-wallet-cli/internal/adapters/transport/wsbridge"
	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"go.uber.org/zap"
)

const bridgeTokenKey = chainstore.BridgeTokenKey

type app struct {
	settings       settings
	logger         *zap.Logger
	contracts      *tomlrepo.Repository
	secretStore    *chainstore.Store
	table          *domain.FunctionTable
	sessions       *application.SessionRegistry
	resolver       *application.SignerResolver
	builder        *application.TransactionBuilder
	metrics        *promobserver.Observer
	resultRenderer func(resultadapter.Report, resultadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp(logOutput io.Writer) (*app, error) {
	homeDir, err := userHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	conf, err := settingsFrom(cfg, homeDir)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(conf.LogLevel, conf.LogFormat, logOutput)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire contract repository: %w", err)
	}

	table := domain.DefaultFunctionTable()
	extra, err := repo.Functions(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load registered functions: %w", err)
	}
	if err := table.Register(extra...); err != nil {
		return nil, fmt.Errorf("register functions from %s: %w", repo.Path(), err)
	}

	secretStore, err := chainstore.NewEnvFirstWithFileFallback(conf.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	a := &app{
		settings:       conf,
		logger:         logger,
		contracts:      repo,
		secretStore:    secretStore,
		table:          table,
		resolver:       application.NewSignerResolver(conf.Network, logger),
		builder:        application.NewTransactionBuilder(conf.Builder, evmabi.NewEncoder(), table),
		metrics:        promobserver.NewObserver(),
		resultRenderer: resultadapter.Render,
		now:            time.Now,
	}
	bridge, err := a.newBridge(context.Background())
	if err != nil {
		return nil, err
	}
	a.sessions = application.NewSessionRegistry(bridge, application.WithSessionLogger(logger))

	return a, nil
}

// coordinator builds a coordinator over the shared session. dynamic enables
// the type-classified marshalling path in addition to the configured one.
func (a *app) coordinator(dynamic bool) *application.Coordinator {
	marshaller := application.NewMarshaller(a.table, application.WithDynamicFallback(a.settings.Dynamic || dynamic))
	return application.NewCoordinator(a.sessions, a.resolver, marshaller, a.builder,
		application.WithCoordinatorLogger(a.logger),
		application.WithExecutionObserver(a.metrics),
		application.WithDefaultStrategy(a.settings.Strategy),
		application.WithClock(ports.SystemClock{}),
	)
}

// newBridge does not dial: the session registry connects on first use.
func (a *app) newBridge(ctx context.Context) (*wsbridge.Client, error) {
	token, err := a.secretStore.Get(ctx, bridgeTokenKey)
	if err != nil {
		if !errors.Is(err, domain.ErrSecretNotFound) {
			return nil, fmt.Errorf("read bridge token: %w", err)
		}
		token = ""
	}

	return wsbridge.New(wsbridge.Config{
		URL:     a.settings.BridgeURL,
		AppName: a.settings.AppName,
		Network: a.settings.Network,
		Token:   token,
		Logger:  a.logger,
	}), nil
}

func (a *app) shutdown() error {
	var errs []error
	if err := a.sessions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close wallet session: %w", err))
	}
	if a.settings.MetricsTextfile != "" {
		if err := a.metrics.WriteTextfile(a.settings.MetricsTextfile); err != nil {
			errs = append(errs, err)
		}
	}
	_ = a.logger.Sync()
	return errors.Join(errs...)
}
