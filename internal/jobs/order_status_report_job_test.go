package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"delivery-order/internal/core/domain/model/order"
	"delivery-order/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStatusCounter struct{ mock.Mock }

func (m *MockOrderStatusCounter) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[order.Status]int64)
	return counts, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderStatusReportJob_Report(t *testing.T) {
	counter := &MockOrderStatusCounter{}
	counter.On("CountByStatus", mock.Anything).Return(map[order.Status]int64{
		order.Created:   3,
		order.Delivered: 1,
	}, nil).Once()

	registry := prometheus.NewRegistry()
	job := jobs.NewOrderStatusReportJob(counter, "", registry, discardLogger())

	require.NoError(t, job.Report(context.Background()))

	expected := `
# HELP delivery_orders Number of orders per status
# TYPE delivery_orders gauge
delivery_orders{status="canceled"} 0
delivery_orders{status="completed"} 0
delivery_orders{status="created"} 3
delivery_orders{status="delivered"} 1
delivery_orders{status="delivering"} 0
delivery_orders{status="matched"} 0
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "delivery_orders"))
	counter.AssertExpectations(t)
}

func TestOrderStatusReportJob_ReportResetsStatusesThatEmptied(t *testing.T) {
	counter := &MockOrderStatusCounter{}
	counter.On("CountByStatus", mock.Anything).Return(map[order.Status]int64{order.Created: 2}, nil).Once()
	counter.On("CountByStatus", mock.Anything).Return(map[order.Status]int64{}, nil).Once()

	registry := prometheus.NewRegistry()
	job := jobs.NewOrderStatusReportJob(counter, "", registry, discardLogger())

	require.NoError(t, job.Report(context.Background()))
	require.NoError(t, job.Report(context.Background()))

	count, err := testutil.GatherAndCount(registry, "delivery_orders")
	require.NoError(t, err)
	assert.Equal(t, len(order.AllStatuses()), count)

	families, err := registry.Gather()
	require.NoError(t, err)
	for _, metric := range families[0].GetMetric() {
		assert.Zero(t, metric.GetGauge().GetValue())
	}
}

func TestOrderStatusReportJob_ReportError(t *testing.T) {
	counter := &MockOrderStatusCounter{}
	boom := errors.New("connection refused")
	counter.On("CountByStatus", mock.Anything).Return(nil, boom)

	job := jobs.NewOrderStatusReportJob(counter, "", prometheus.NewRegistry(), discardLogger())

	require.ErrorIs(t, job.Report(context.Background()), boom)
}

func TestOrderStatusReportJob_StartStop(t *testing.T) {
	t.Run("valid schedules", func(t *testing.T) {
		for _, schedule := range []string{"@every 30s", "*/5 * * * *", "0 */5 * * * *"} {
			job := jobs.NewOrderStatusReportJob(&MockOrderStatusCounter{}, schedule, prometheus.NewRegistry(),
				discardLogger())

			require.NoError(t, job.Start(), schedule)
			job.Stop()
		}
	})

	t.Run("invalid schedule", func(t *testing.T) {
		job := jobs.NewOrderStatusReportJob(&MockOrderStatusCounter{}, "every now and then",
			prometheus.NewRegistry(), discardLogger())

		err := job.Start()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "every now and then")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("start and stop", func(t *testing.T) {
		job := jobs.NewOrderStatusReportJob(&MockOrderStatusCounter{}, "@every 1h", prometheus.NewRegistry(),
			discardLogger())
		manager := jobs.NewJobManager(job)

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("start failure is wrapped", func(t *testing.T) {
		job := jobs.NewOrderStatusReportJob(&MockOrderStatusCounter{}, "bogus", prometheus.NewRegistry(),
			discardLogger())

		err := jobs.NewJobManager(job).StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order status report job")
	})
}
