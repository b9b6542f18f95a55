// Package jobs provides scheduled background tasks for the delivery-order
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderStatusReportJob counts orders per status and exports the result as the
// delivery_orders{status} Prometheus gauge. It runs every 30 seconds unless
// ORDER_REPORT_SCHEDULE says otherwise.
//
// # Usage
//
//	job := jobs.NewOrderStatusReportJob(orderRepo, cfg.OrderReportSchedule, prometheus.DefaultRegisterer, logger)
//	jobManager := jobs.NewJobManager(job)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick; the gauge keeps its
// previous values until then.
package jobs
