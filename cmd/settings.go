package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/hedera-wallet-cli/internal/application"
	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	configDirName = ".hw"
	envPrefix     = "HW"
)

type settings struct {
	Network         string
	BridgeURL       string
	AppName         string
	Builder         application.BuilderConfig
	Strategy        application.SubmissionStrategy
	LogLevel        string
	LogFormat       string
	MetricsTextfile string
	Dynamic         bool
	SecretsDir      string
}

// loadConfig reads ~/.hw/config.toml when present. Every key can be
// overridden with an HW_ variable, e.g. HW_BRIDGE_URL for bridge.url.
func loadConfig(homeDir string) (*viper.Viper, error) {
	cfg := viper.New()
	configDir := filepath.Join(homeDir, configDirName)

	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("network", "testnet")
	cfg.SetDefault("bridge.url", "ws://127.0.0.1:7878/wallet")
	cfg.SetDefault("app.name", "hw")
	cfg.SetDefault("gas.default", application.DefaultGasLimit)
	cfg.SetDefault("gas.max", application.MaxGasLimit)
	cfg.SetDefault("fees.max_fee", "2")
	cfg.SetDefault("fees.asset_creation_deposit", "20")
	cfg.SetDefault("submission.strategy", string(application.StrategyAuto))
	cfg.SetDefault("log.level", "warn")
	cfg.SetDefault("log.format", "console")
	cfg.SetDefault("metrics.textfile", "")
	cfg.SetDefault("marshal.dynamic", false)
	cfg.SetDefault("secrets.dir", filepath.Join(configDir, "secrets"))
	cfg.SetDefault("contracts.path", filepath.Join(configDir, "contracts.toml"))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}

func settingsFrom(cfg *viper.Viper, homeDir string) (settings, error) {
	maxFee, err := domain.ParseHbar(cfg.GetString("fees.max_fee"))
	if err != nil {
		return settings{}, fmt.Errorf("parse fees.max_fee: %w", err)
	}
	deposit, err := domain.ParseHbar(cfg.GetString("fees.asset_creation_deposit"))
	if err != nil {
		return settings{}, fmt.Errorf("parse fees.asset_creation_deposit: %w", err)
	}
	strategy, err := application.ParseSubmissionStrategy(cfg.GetString("submission.strategy"))
	if err != nil {
		return settings{}, fmt.Errorf("parse submission.strategy: %w", err)
	}

	defaultGas := cfg.GetUint64("gas.default")
	maxGas := cfg.GetUint64("gas.max")
	if defaultGas == 0 || maxGas == 0 || defaultGas > maxGas {
		return settings{}, fmt.Errorf("invalid gas settings: default %d, max %d", defaultGas, maxGas)
	}

	return settings{
		Network:   strings.TrimSpace(cfg.GetString("network")),
		BridgeURL: strings.TrimSpace(cfg.GetString("bridge.url")),
		AppName:   cfg.GetString("app.name"),
		Builder: application.BuilderConfig{
			MaxFee:               maxFee,
			AssetCreationDeposit: deposit,
			DefaultGas:           defaultGas,
			MaxGas:               maxGas,
		},
		Strategy:        strategy,
		LogLevel:        cfg.GetString("log.level"),
		LogFormat:       cfg.GetString("log.format"),
		MetricsTextfile: expandHome(cfg.GetString("metrics.textfile"), homeDir),
		Dynamic:         cfg.GetBool("marshal.dynamic"),
		SecretsDir:      expandHome(cfg.GetString("secrets.dir"), homeDir),
	}, nil
}

func expandHome(path, homeDir string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "~" {
		return homeDir
	}
	if strings.HasPrefix(trimmed, "~/") {
		return filepath.Join(homeDir, trimmed[2:])
	}
	return trimmed
}

func userHomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return homeDir, nil
}
