package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// TotalsAuditJob periodically re-verifies the expected cash-on-delivery
// reconciliation across all non-archived orders. Every mutation path already
// reconciles synchronously, so a mismatch means a bug or out-of-band data
// change; the job logs the drift and repairs the stored amount.
type TotalsAuditJob struct {
	uowFactory commands.OrderUoWFactory
	handler    commands.RecalculateOrderTotalsCommandHandler
	cron       *cron.Cron
	schedule   string
	logger     *slog.Logger
}

// NewTotalsAuditJob creates the audit job.
// The schedule is a six-field cron expression, e.g. "0 0 3 * * *" for every
// night at 03:00.
func NewTotalsAuditJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.RecalculateOrderTotalsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TotalsAuditJob {
	return &TotalsAuditJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		schedule:   schedule,
		logger:     logger.With("component", "totals_audit_job"),
	}
}

// Start schedules the audit job.
func (j *TotalsAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Totals audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit job.
func (j *TotalsAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Totals audit job stopped")
}

// Run executes one audit pass. Exposed so an audit can also be triggered
// manually, e.g. at startup.
func (j *TotalsAuditJob) Run(ctx context.Context) {
	drifted, err := j.findDriftedOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Totals audit failed to load orders", "error", err)
		return
	}

	for _, orderID := range drifted {
		cmd, cmdErr := commands.NewRecalculateOrderTotalsCommand(orderID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Totals audit failed to build command",
				"order_id", orderID, "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Totals audit failed to repair order",
				"order_id", orderID, "error", handleErr)
		}
	}

	if len(drifted) == 0 {
		j.logger.InfoContext(ctx, "Totals audit passed, no drift found")
	}
}

// findDriftedOrders loads all active orders read-only and re-derives each
// expected amount in memory, returning the IDs whose stored amount disagrees.
func (j *TotalsAuditJob) findDriftedOrders(ctx context.Context) ([]kernel.UUID, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	drifted := make([]kernel.UUID, 0)
	for _, o := range orders {
		stored := o.ExpectedCOD()
		if err = o.RecalculateExpectedCOD(); err != nil {
			j.logger.ErrorContext(ctx, "Totals audit failed to recompute order",
				"order_id", o.ID(), "error", err)
			continue
		}

		equal, cmpErr := stored.IsEqual(o.ExpectedCOD())
		if cmpErr != nil {
			j.logger.ErrorContext(ctx, "Totals audit failed to compare order",
				"order_id", o.ID(), "error", cmpErr)
			continue
		}

		if !equal {
			j.logger.WarnContext(ctx, "Totals audit found drifted order",
				"order_id", o.ID(),
				"order_code", o.Code().String(),
				"stored", stored.String(),
				"derived", o.ExpectedCOD().String(),
			)
			drifted = append(drifted, o.ID())
		}
	}

	return drifted, nil
}
