package persistence

import (
	"context"
	"io"
	"testing"

	"order_core/internal/adapter/persistence/memory"
	"order_core/internal/adapter/persistence/repository"
	"order_core/internal/infrastructure/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		stores, err := Open(context.Background(), config.Config{StoreDriver: config.StoreDriverMemory}, discardLog())
		require.NoError(t, err)
		assert.IsType(t, &memory.Store{}, stores.UnitOfWork)
		assert.IsType(t, &memory.OrderRepository{}, stores.Orders)

		n, err := stores.Sequences.Next(context.Background(), "order", 2026)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open(context.Background(), config.Config{StoreDriver: "postgres"}, discardLog())
		require.Error(t, err)
	})
}

func TestNewDynamoStores(t *testing.T) {
	stores := NewDynamoStores(nil, repository.NewTables(""), discardLog())
	assert.IsType(t, &repository.DynamoUnitOfWork{}, stores.UnitOfWork)
	assert.IsType(t, &repository.ConsistencyDynamoReader{}, stores.Reader)
	assert.IsType(t, &repository.SequenceDynamoRepository{}, stores.Sequences)
}
