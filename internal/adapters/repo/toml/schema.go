package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version"`
	Contracts []contractSchema `toml:"contracts"`
	Functions []functionSchema `toml:"functions,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported contracts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type contractSchema struct {
	Name string `toml:"name"`
	ID   string `toml:"id"`
	Kind string `toml:"kind"`
	Memo string `toml:"memo,omitempty"`
}

type functionSchema struct {
	Name         string      `toml:"name"`
	CreatesAsset bool        `toml:"creates_asset,omitempty"`
	Args         []argSchema `toml:"args"`
}

type argSchema struct {
	Name     string `toml:"name"`
	Kind     string `toml:"kind"`
	Optional bool   `toml:"optional,omitempty"`
}
