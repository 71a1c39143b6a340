package service

import (
	"log/slog"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	producer queue.Producer
	registry *engine.Registry
	logger   *slog.Logger
}

func NewServices(stores *store.Stores, txRunner TxRunner, producer queue.Producer, registry *engine.Registry, logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		producer: producer,
		registry: registry,
		logger:   logger,
	}
}

func (s *Services) Users() UserService {
	return NewUserService(s.txRunner, s.registry)
}

func (s *Services) Signals() SignalIngestService {
	return NewSignalIngestService(s.txRunner, s.producer, s.registry, s.logger)
}

func (s *Services) Catalog() CatalogService {
	return NewCatalogService(s.stores.Catalog(), s.logger)
}

func (s *Services) Analysis() AnalysisService {
	return NewAnalysisService(s.stores.Users(), s.stores.CaptureSessions(), s.stores.Answers(), s.stores.Catalog(), s.registry, s.logger)
}

func (s *Services) Routines() RoutineService {
	return NewRoutineService(s.txRunner, s.Analysis(), s.producer, s.registry, s.logger)
}

func (s *Services) Narratives() NarrativeService {
	return NewNarrativeService(s.txRunner, s.producer, s.logger)
}
