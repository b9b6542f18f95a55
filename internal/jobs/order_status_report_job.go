package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"delivery-order/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultOrderReportSchedule is used when no schedule is configured.
const DefaultOrderReportSchedule = "@every 30s"

const reportTimeout = 10 * time.Second

// OrderStatusCounter is the read side of the order repository used by the job.
type OrderStatusCounter interface {
	CountByStatus(ctx context.Context) (map[order.Status]int64, error)
}

// OrderStatusReportJob periodically publishes the number of orders per
// status as the delivery_orders gauge.
type OrderStatusReportJob struct {
	counter  OrderStatusCounter
	schedule string
	gauge    *prometheus.GaugeVec
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusReportJob registers the gauge on registerer (the default
// registerer when nil). schedule accepts a cron expression with optional
// seconds or a descriptor such as "@every 30s".
func NewOrderStatusReportJob(
	counter OrderStatusCounter,
	schedule string,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) *OrderStatusReportJob {
	if schedule == "" {
		schedule = DefaultOrderReportSchedule
	}
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "delivery_orders",
		Help: "Number of orders per status",
	}, []string{"status"})
	registerer.MustRegister(gauge)

	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	return &OrderStatusReportJob{
		counter:  counter,
		schedule: schedule,
		gauge:    gauge,
		cron:     cron.New(cron.WithParser(parser)),
		logger:   logger.With("component", "order_status_report_job"),
	}
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *OrderStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		if err := j.Report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order status report failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status report job stopped")
}

// Report reads the counts and updates the gauge. Statuses without orders are
// set to 0 so they do not keep a stale value.
func (j *OrderStatusReportJob) Report(ctx context.Context) error {
	counts, err := j.counter.CountByStatus(ctx)
	if err != nil {
		return err
	}

	for _, status := range order.AllStatuses() {
		j.gauge.WithLabelValues(status.String()).Set(float64(counts[status]))
	}
	return nil
}
