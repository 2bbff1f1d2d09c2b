package jobs_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"courier/internal/adapters/out/memory"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
	"courier/internal/jobs"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// syncBuffer lets worker goroutines and the test share a log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), "A", "B", "1 Main St", 2.0, shipment.Local)
	require.NoError(t, err)
	return s
}

func TestDeliveryWorker_DeliversAfterDelay(t *testing.T) {
	ctx := t.Context()
	store := memory.NewRecordStore()
	worker := jobs.NewDeliveryWorker(commands.NewDeliverShipmentCommandHandler(store), 50*time.Millisecond, discardLogger())
	s := newShipment(t)

	worker.Dispatch(ctx, s)

	_, err := store.ShipmentRepository().Get(ctx, s.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "shipment must not be visible before delivery")

	worker.Wait()

	delivered, err := store.ShipmentRepository().Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, shipment.Delivered, delivered.Status())
	assert.InDelta(t, 10.0, delivered.Cost(), 1e-9)
}

func TestDeliveryWorker_EachShipmentDeliveredExactlyOnce(t *testing.T) {
	ctx := t.Context()
	store := memory.NewRecordStore()
	worker := jobs.NewDeliveryWorker(commands.NewDeliverShipmentCommandHandler(store), 5*time.Millisecond, discardLogger())

	const n = 200
	for range n {
		worker.Dispatch(ctx, newShipment(t))
	}
	worker.Wait()

	items, err := store.ShipmentRepository().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, n)
	for _, s := range items {
		assert.Equal(t, shipment.Delivered, s.Status())
	}
}

func TestDeliveryWorker_CallerCancellationDoesNotAbort(t *testing.T) {
	store := memory.NewRecordStore()
	worker := jobs.NewDeliveryWorker(commands.NewDeliverShipmentCommandHandler(store), 20*time.Millisecond, discardLogger())
	s := newShipment(t)

	requestCtx, cancel := context.WithCancel(t.Context())
	worker.Dispatch(requestCtx, s)
	cancel()
	worker.Wait()

	_, err := store.ShipmentRepository().Get(t.Context(), s.ID())
	require.NoError(t, err)
}

func TestDeliveryWorker_StopDropsPendingShipments(t *testing.T) {
	ctx := t.Context()
	store := memory.NewRecordStore()
	logs := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	worker := jobs.NewDeliveryWorker(commands.NewDeliverShipmentCommandHandler(store), time.Hour, logger)
	s := newShipment(t)

	worker.Dispatch(ctx, s)
	worker.Stop()
	worker.Wait()

	count, err := store.ShipmentRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, shipment.InTransit, s.Status())
	assert.Contains(t, logs.String(), "Delivery interrupted, shipment dropped")
	assert.Contains(t, logs.String(), s.ID().String())

	t.Run("dispatch after stop drops immediately", func(t *testing.T) {
		late := newShipment(t)

		worker.Dispatch(ctx, late)
		worker.Wait()

		_, err := store.ShipmentRepository().Get(ctx, late.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestDeliveryWorker_LogsFailedDelivery(t *testing.T) {
	ctx := t.Context()
	store := memory.NewRecordStore()
	logs := &syncBuffer{}
	worker := jobs.NewDeliveryWorker(
		commands.NewDeliverShipmentCommandHandler(store),
		time.Millisecond,
		slog.New(slog.NewTextHandler(logs, nil)),
	)
	s := newShipment(t)
	require.NoError(t, s.Deliver())

	worker.Dispatch(ctx, s)
	worker.Wait()

	count, err := store.ShipmentRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, logs.String(), "Delivery failed")
}

// blockingShipmentRepository runs onAdd and then holds the insert until the
// context is cancelled.
type blockingShipmentRepository struct {
	ports.ShipmentRepository
	onAdd func()
}

func (r blockingShipmentRepository) Add(ctx context.Context, _ *shipment.Shipment) error {
	r.onAdd()
	<-ctx.Done()
	return ctx.Err()
}

type blockingStore struct {
	*memory.RecordStore
	shipments ports.ShipmentRepository
}

func (s blockingStore) ShipmentRepository() ports.ShipmentRepository {
	return s.shipments
}

func TestDeliveryWorker_StopDuringInsertIsLoggedAsInterrupted(t *testing.T) {
	mem := memory.NewRecordStore()
	logs := &syncBuffer{}
	var worker *jobs.DeliveryWorker
	store := blockingStore{
		RecordStore: mem,
		shipments: blockingShipmentRepository{
			ShipmentRepository: mem.ShipmentRepository(),
			onAdd:              func() { worker.Stop() },
		},
	}
	worker = jobs.NewDeliveryWorker(
		commands.NewDeliverShipmentCommandHandler(store),
		time.Millisecond,
		slog.New(slog.NewTextHandler(logs, nil)),
	)
	s := newShipment(t)

	worker.Dispatch(t.Context(), s)
	worker.Wait()

	count, err := mem.ShipmentRepository().Count(t.Context())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Contains(t, logs.String(), "Delivery interrupted, shipment dropped")
	assert.NotContains(t, logs.String(), "Delivery failed")
}
