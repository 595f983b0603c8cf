package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbConnections   *prometheus.GaugeVec

	slotsGenerated    *prometheus.CounterVec
	feasibilityChecks *prometheus.CounterVec
	slotCacheRequests *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре (используется promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"service", "operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of failed database queries",
		}, []string{"service", "operation"}),
		dbConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),
		slotsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viewing_slots_generated_total",
			Help: "Total number of viewing slots returned, by status",
		}, []string{"service", "status"}),
		feasibilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viewing_feasibility_checks_total",
			Help: "Total number of single viewing feasibility checks, by result",
		}, []string{"service", "result"}),
		slotCacheRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "viewing_slot_cache_requests_total",
			Help: "Slot cache lookups, by result (hit, miss, error)",
		}, []string{"service", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbConnections,
		m.slotsGenerated,
		m.feasibilityChecks,
		m.slotCacheRequests,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполнение SQL-запроса
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(m.serviceName, operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
}

// AddSlotsGenerated увеличивает счетчик выданных слотов по статусу
func (m *Metrics) AddSlotsGenerated(status string, count int) {
	if m == nil || count == 0 {
		return
	}
	m.slotsGenerated.WithLabelValues(m.serviceName, status).Add(float64(count))
}

// IncFeasibilityCheck увеличивает счетчик проверок выполнимости
func (m *Metrics) IncFeasibilityCheck(result string) {
	if m == nil {
		return
	}
	m.feasibilityChecks.WithLabelValues(m.serviceName, result).Inc()
}

// IncSlotCache увеличивает счетчик обращений к кэшу слотов
func (m *Metrics) IncSlotCache(result string) {
	if m == nil {
		return
	}
	m.slotCacheRequests.WithLabelValues(m.serviceName, result).Inc()
}
