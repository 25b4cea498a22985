package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	DatasetLoadsTotal    *prometheus.CounterVec
	DatasetRecords       *prometheus.GaugeVec
	DatasetRejectedRows  *prometheus.CounterVec
	OccupancyResolutions *prometheus.CounterVec
}

// New регистрирует метрики в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DatasetLoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dataset_loads_total",
			Help:        "Number of schedule dataset loads",
			ConstLabels: constLabels,
		}, []string{"source", "status"}),

		DatasetRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "dataset_records",
			Help:        "Number of records in the current snapshot",
			ConstLabels: constLabels,
		}, []string{"table"}),

		DatasetRejectedRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dataset_rejected_rows_total",
			Help:        "Number of source rows rejected by the normalizer",
			ConstLabels: constLabels,
		}, []string{"table"}),

		OccupancyResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "occupancy_resolutions_total",
			Help:        "Number of occupancy lookups",
			ConstLabels: constLabels,
		}, []string{"floor"}),
	}
}

// ObserveDatasetLoad учитывает попытку загрузки набора данных
func (m *Metrics) ObserveDatasetLoad(source, status string) {
	m.DatasetLoadsTotal.WithLabelValues(source, status).Inc()
}

// SetDatasetRecords обновляет размеры таблиц текущего снимка
func (m *Metrics) SetDatasetRecords(table string, count int) {
	m.DatasetRecords.WithLabelValues(table).Set(float64(count))
}

// AddRejectedRows учитывает отклоненные строки
func (m *Metrics) AddRejectedRows(table string, count int) {
	m.DatasetRejectedRows.WithLabelValues(table).Add(float64(count))
}

// ObserveResolution учитывает расчет занятости этажа
func (m *Metrics) ObserveResolution(floor string) {
	m.OccupancyResolutions.WithLabelValues(floor).Inc()
}
