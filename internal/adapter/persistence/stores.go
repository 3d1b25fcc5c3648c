// Package persistence selects the Entity Store implementation named by the
// configuration and exposes it as the use-case ports.
package persistence

import (
	"context"

	"order_core/internal/adapter/persistence/memory"
	"order_core/internal/adapter/persistence/repository"
	"order_core/internal/infrastructure/config"
	"order_core/internal/infrastructure/database"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

// Stores bundles every port backed by one Entity Store.
type Stores struct {
	UnitOfWork interfaces.IUnitOfWork
	Quotations interfaces.IQuotationRepository
	Products   interfaces.IProductRepository
	Orders     interfaces.IOrderRepository
	Samples    interfaces.ISampleRequestRepository
	Sequences  interfaces.ISequenceGenerator
	Reader     interfaces.IConsistencyReader
}

// Open connects to the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg config.Config, log *logrus.Entry) (Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn("using the in-memory store, data is lost on exit")
		return NewMemoryStores(memory.NewStore()), nil
	case config.StoreDriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Stores{}, err
		}
		tables := repository.NewTables(cfg.DynamoDB.TablePrefix)
		if cfg.DynamoDB.AutoCreateTables {
			if err := database.EnsureTables(ctx, client, tables.Definitions(), log); err != nil {
				return Stores{}, errors.Wrap(err, "ensure tables")
			}
		}
		return NewDynamoStores(client, tables, log), nil
	default:
		return Stores{}, errors.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func NewMemoryStores(s *memory.Store) Stores {
	return Stores{
		UnitOfWork: s,
		Quotations: memory.NewQuotationRepository(s),
		Products:   memory.NewProductRepository(s),
		Orders:     memory.NewOrderRepository(s),
		Samples:    memory.NewSampleRequestRepository(s),
		Sequences:  s,
		Reader:     s,
	}
}

func NewDynamoStores(ddb repository.DynamoAPI, tables repository.Tables, log *logrus.Entry) Stores {
	return Stores{
		UnitOfWork: repository.NewDynamoUnitOfWork(ddb, tables, log.WithField("layer", "repository")),
		Quotations: repository.NewQuotationDynamoRepository(ddb, tables),
		Products:   repository.NewProductDynamoRepository(ddb, tables),
		Orders:     repository.NewOrderDynamoRepository(ddb, tables),
		Samples:    repository.NewSampleRequestDynamoRepository(ddb, tables),
		Sequences:  repository.NewSequenceDynamoRepository(ddb, tables),
		Reader:     repository.NewConsistencyDynamoReader(ddb, tables),
	}
}
