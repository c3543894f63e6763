package app

import (
	"errors"
	"strings"

	"github.com/forPelevin/segview/internal/logger"
	"github.com/forPelevin/segview/internal/ports"
	"github.com/forPelevin/segview/internal/ports/adapters/filestore"
	"github.com/forPelevin/segview/internal/ports/adapters/tsgen"
	"github.com/forPelevin/segview/internal/routes"
	"github.com/forPelevin/segview/internal/usecase"
)

type Config struct {
	BaseURL string
	// StoreDir holds saved collections.
	StoreDir string
	Strict   bool
	Log      logger.Logger
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.StoreDir) == "" {
		return errors.New("store dir is empty")
	}
	return routes.ValidateBaseURL(c.BaseURL)
}

// New wires the adapters into a Usecase.
func New(cfg Config) usecase.Usecase {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	deps := usecase.Deps{
		Store: filestore.New(cfg.StoreDir),
		Types: tsgen.New(),
	}
	return usecase.New(deps, usecase.Options{
		BaseURL: cfg.BaseURL,
		Strict:  cfg.Strict,
		Log:     log,
	})
}

// ensure adapters implement ports
var _ ports.SegmentStore = (*filestore.Adapter)(nil)
var _ ports.TypeWriter = (*tsgen.Adapter)(nil)
