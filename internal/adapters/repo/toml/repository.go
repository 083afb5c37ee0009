package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	contractsPathKey    = "contracts.path"
	contractsFileMode   = 0o600
	contractsDirMode    = 0o700
	contractsConfigDir  = ".hw"
	contractsConfigFile = "contracts.toml"
	tempFilePattern     = ".contracts-*.toml.tmp"
)

// Repository stores named contract and token entries, plus extra function
// definitions, in a TOML file.
type Repository struct {
	contractsPath string
	mu            *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ContractRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(contractsPathKey, filepath.Join(homeDir, contractsConfigDir, contractsConfigFile))

	contractsPath := cfg.GetString(contractsPathKey)
	if contractsPath == "" {
		return nil, errors.New("contracts path is empty")
	}
	contractsPath, err = normalizeContractsPath(contractsPath, homeDir)
	if err != nil {
		return nil, err
	}

	return &Repository{contractsPath: contractsPath, mu: lockForPath(contractsPath)}, nil
}

func (r *Repository) Path() string {
	return r.contractsPath
}

// Save inserts entry or replaces the entry with the same name.
func (r *Repository) Save(ctx context.Context, entry domain.ContractEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(entry)
	updated := false
	for i := range file.Contracts {
		if strings.EqualFold(file.Contracts[i].Name, encoded.Name) {
			file.Contracts[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Contracts = append(file.Contracts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.ContractEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.ContractEntry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ContractEntry{}, err
	}

	for _, entry := range file.Contracts {
		if strings.EqualFold(entry.Name, strings.TrimSpace(name)) {
			return fromSchema(entry)
		}
	}

	return domain.ContractEntry{}, fmt.Errorf("%w: %s", domain.ErrContractNotFound, name)
}

func (r *Repository) List(ctx context.Context) ([]domain.ContractEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ContractEntry, 0, len(file.Contracts))
	for _, encoded := range file.Contracts {
		entry, err := fromSchema(encoded)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Functions returns the function definitions declared in the file, validated.
func (r *Repository) Functions(ctx context.Context) ([]domain.FunctionCallSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	specs := make([]domain.FunctionCallSpec, 0, len(file.Functions))
	for _, encoded := range file.Functions {
		spec := fromFunctionSchema(encoded)
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("invalid function in %s: %w", r.contractsPath, err)
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.contractsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read contracts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode contracts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeContractsPath(path, homeDir string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve contracts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.contractsPath), contractsDirMode); err != nil {
		return fmt.Errorf("create contracts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode contracts file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.contractsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp contracts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp contracts file: %w", err)
	}
	if err := tempFile.Chmod(contractsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp contracts file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp contracts file: %w", err)
	}
	if err := os.Rename(tempName, r.contractsPath); err != nil {
		return fmt.Errorf("replace contracts file: %w", err)
	}
	cleanup = false

	return nil
}

func toSchema(entry domain.ContractEntry) contractSchema {
	return contractSchema{
		Name: entry.Name,
		ID:   entry.ID.String(),
		Kind: string(entry.Kind),
		Memo: entry.Memo,
	}
}

func fromSchema(entry contractSchema) (domain.ContractEntry, error) {
	id, err := domain.ParseEntityID(entry.ID)
	if err != nil {
		return domain.ContractEntry{}, fmt.Errorf("contract %q: %w", entry.Name, err)
	}

	kind := domain.ContractKind(entry.Kind)
	if kind == "" {
		kind = domain.ContractKindContract
	}

	return domain.ContractEntry{Name: entry.Name, ID: id, Kind: kind, Memo: entry.Memo}, nil
}

func fromFunctionSchema(encoded functionSchema) domain.FunctionCallSpec {
	args := make([]domain.ArgSpec, 0, len(encoded.Args))
	for _, arg := range encoded.Args {
		args = append(args, domain.ArgSpec{Name: arg.Name, Kind: domain.ArgKind(arg.Kind), Optional: arg.Optional})
	}
	return domain.FunctionCallSpec{
		Name:         domain.FunctionName(encoded.Name),
		Args:         args,
		CreatesAsset: encoded.CreatesAsset,
	}
}
