package prom

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Subsystems
const (
	SystemHTTP          = "http"
	SystemApplications  = "applications"
	SystemFund          = "fund"
	SystemSeniors       = "seniors"
	SystemNotifications = "notifications"
)

// Metric names
const (
	MetricRequestDuration     = "request_duration_seconds"
	MetricApplicationsCreated = "created_total"
	MetricStatusUpdates       = "status_updates_total"
	MetricFundAdditions       = "additions_total"
	MetricFundDeletions       = "deletions_total"
	MetricReleases            = "releases_total"
	MetricMarkedRead          = "marked_read_total"
)

var (
	mu        sync.Mutex
	enabled   bool
	namespace = "none"

	counters      = make(map[string]prometheus.Counter)
	counterVecs   = make(map[string]*prometheus.CounterVec)
	histogramVecs = make(map[string]*prometheus.HistogramVec)
)

var defaultLabels prometheus.Labels

// Create registers every metric the service emits. Call once at startup.
func Create(host string, env string, nameSpace string) error {
	defaultLabels = prometheus.Labels{"env": env, "instance": host}
	namespace = nameSpace
	enabled = true

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createHistogramVec(SystemHTTP, MetricRequestDuration, []string{"method", "status"}))
	hasError(createCounter(SystemApplications, MetricApplicationsCreated))
	hasError(createCounterVec(SystemApplications, MetricStatusUpdates, []string{"status"}))
	hasError(createCounter(SystemFund, MetricFundAdditions))
	hasError(createCounter(SystemFund, MetricFundDeletions))
	hasError(createCounter(SystemSeniors, MetricReleases))
	hasError(createCounter(SystemNotifications, MetricMarkedRead))

	return err
}

// Handler adapts the promhttp scrape handler onto the fasthttp engine.
func Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}

func createCounter(subsystem, name string) error {
	mu.Lock()
	defer mu.Unlock()
	counters[subsystem+name] = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
	})
	return prometheus.Register(counters[subsystem+name])
}

func createCounterVec(subsystem, name string, labels []string) error {
	mu.Lock()
	defer mu.Unlock()
	counterVecs[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
	}, labels)
	return prometheus.Register(counterVecs[subsystem+name])
}

func createHistogramVec(subsystem, name string, labels []string) error {
	mu.Lock()
	defer mu.Unlock()
	histogramVecs[subsystem+name] = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		ConstLabels: defaultLabels,
		Buckets:     prometheus.DefBuckets,
	}, labels)
	return prometheus.Register(histogramVecs[subsystem+name])
}

func IncCounter(subsystem, name string) {
	AddCounter(subsystem, name, 1)
}

func AddCounter(subsystem, name string, number float64) {
	if !enabled {
		return
	}
	if v, ok := counters[subsystem+name]; ok {
		v.Add(number)
	}
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	if !enabled {
		return
	}
	if v, ok := counterVecs[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Inc()
	}
}

func ObserveHistogramVec(subsystem, name string, value float64, labelValues ...string) {
	if !enabled {
		return
	}
	if v, ok := histogramVecs[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Observe(value)
	}
}
