package repository

import (
	"github.com/diillson/billswitch/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	LoadDotEnv(filePath string) error
}
