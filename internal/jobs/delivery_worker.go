package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/shipment"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "courier/internal/jobs"

// DeliveryWorker simulates fulfillment: every dispatched shipment gets its
// own goroutine that waits a fixed delay and then delivers it.
//
// There is no backpressure; each Dispatch spawns one goroutine. Stop
// interrupts workers still waiting: their shipments are dropped, logged, and
// never reach Delivered.
type DeliveryWorker struct {
	handler commands.DeliverShipmentCommandHandler
	delay   time.Duration
	logger  *slog.Logger
	tracer  trace.Tracer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var _ commands.DeliveryDispatcher = (*DeliveryWorker)(nil)

// NewDeliveryWorker creates a worker that delivers shipments after delay.
func NewDeliveryWorker(
	handler commands.DeliverShipmentCommandHandler,
	delay time.Duration,
	logger *slog.Logger,
) *DeliveryWorker {
	ctx, cancel := context.WithCancel(context.Background())
	return &DeliveryWorker{
		handler: handler,
		delay:   delay,
		logger:  logger.With("component", "delivery_worker"),
		tracer:  otel.Tracer(tracerName),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Dispatch starts the delivery of s and returns immediately. The caller's
// context only contributes values (trace span, request id); its
// cancellation does not abort the delivery.
func (w *DeliveryWorker) Dispatch(ctx context.Context, s *shipment.Shipment) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(w.ctx, cancel)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer stop()
		defer cancel()

		w.deliver(runCtx, s)
	}()
}

func (w *DeliveryWorker) deliver(ctx context.Context, s *shipment.Shipment) {
	ctx, span := w.tracer.Start(ctx, "shipment.deliver", trace.WithAttributes(
		attribute.String("shipment.id", s.ID().String()),
		attribute.String("shipment.category", s.Category().String()),
	))
	defer span.End()

	log := w.logger.With("shipment_id", s.ID().String(), "sender", s.Sender())
	log.InfoContext(ctx, "Processing delivery")

	timer := time.NewTimer(w.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		// Interrupted shipments are dropped without reaching the store.
		span.SetStatus(codes.Error, "interrupted")
		log.WarnContext(ctx, "Delivery interrupted, shipment dropped", "error", ctx.Err())
		return
	case <-timer.C:
	}

	cmd, err := commands.NewDeliverShipmentCommand(s)
	if err == nil {
		err = w.handler.Handle(ctx, cmd)
	}
	if err != nil && ctx.Err() != nil {
		// Stopped between the timer and the insert: same outcome as above.
		span.SetStatus(codes.Error, "interrupted")
		log.WarnContext(ctx, "Delivery interrupted, shipment dropped", "error", err)
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		log.ErrorContext(ctx, "Delivery failed", "error", err)
		return
	}

	log.InfoContext(ctx, "Delivery completed", "cost", s.Cost())
}

// Stop interrupts every delivery still waiting. Dispatch after Stop drops
// the shipment immediately.
func (w *DeliveryWorker) Stop() {
	w.cancel()
}

// Wait blocks until every dispatched delivery has completed or aborted.
func (w *DeliveryWorker) Wait() {
	w.wg.Wait()
}
