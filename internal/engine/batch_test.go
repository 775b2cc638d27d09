package engine_test

import (
	"testing"
	"time"

	"github.com/Ytemiloluwa/paycore/internal/engine"
	"github.com/Ytemiloluwa/paycore/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchAccumulator_AddAndSize(t *testing.T) {
	e := engine.New()
	b := engine.NewBatchAccumulator(e)

	assert.Equal(t, 0, b.GetBatchSize())
	b.AddToBatch(transaction.New("tx-1", transaction.Payment, 1, "USD", "visa-x", "m"))
	b.AddToBatch(transaction.New("tx-2", transaction.Payment, 1, "USD", "visa-x", "m"))
	assert.Equal(t, 2, b.GetBatchSize())
}

func TestBatchAccumulator_ProcessBatchNow(t *testing.T) {
	e := engine.New(engine.WithWorkerCount(2))
	e.Start()
	defer e.Stop()

	b := engine.NewBatchAccumulator(e)
	b.SetAutoBatchInterval(1 * time.Second)

	ids := []string{"tx-a", "tx-b", "tx-c"}
	for _, id := range ids {
		b.AddToBatch(transaction.New(id, transaction.Payment, 10, "USD", "unknown", "m"))
	}

	b.ProcessBatchNow()
	assert.Equal(t, 0, b.GetBatchSize())

	deadline := time.Now().Add(2 * time.Second)
	for _, id := range ids {
		for time.Now().Before(deadline) && e.GetTransactionStatus(id) == transaction.Pending {
			time.Sleep(10 * time.Millisecond)
		}
		status := e.GetTransactionStatus(id)
		assert.Contains(t, []transaction.Status{transaction.Approved, transaction.Declined, transaction.Error}, status)
	}
}

func TestBatchAccumulator_AutoFlushOnInterval(t *testing.T) {
	e := engine.New(engine.WithWorkerCount(1))
	e.Start()
	defer e.Stop()

	b := engine.NewBatchAccumulator(e)
	b.SetAutoBatchInterval(50 * time.Millisecond)
	b.AddToBatch(transaction.New("tx-auto", transaction.Payment, 10, "USD", "unknown", "m"))

	b.Start()
	defer b.Stop()

	deadline := time.Now().Add(1 * time.Second)
	for time.Now().Before(deadline) && b.GetBatchSize() > 0 {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 0, b.GetBatchSize())
}

func TestBatchAccumulator_StartStopIdempotent(t *testing.T) {
	e := engine.New()
	b := engine.NewBatchAccumulator(e)
	b.SetAutoBatchInterval(10 * time.Millisecond)

	b.Start()
	b.Start() // idempotent, must not spawn a second scheduler
	b.Stop()
	b.Stop() // idempotent, must not block or panic
}
