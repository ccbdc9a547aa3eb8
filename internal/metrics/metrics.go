package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hr_roster"

// Metrics は社員一覧・解雇処理・DB アクセスの監視用メトリクスをまとめます。
// nil の *Metrics に対する Observe 系メソッドは何もしません。
type Metrics struct {
	RosterLoads     *prometheus.CounterVec
	RosterSize      prometheus.Gauge
	RiskScores      prometheus.Histogram
	Firings         *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics は reg に登録済みの Metrics を生成します。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RosterLoads: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "roster_loads_total",
			Help:      "Total number of roster loads by outcome.",
		}, []string{"status"}),
		RosterSize: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "roster_active_employees",
			Help:      "Number of active employees returned by the last successful roster load.",
		}),
		RiskScores: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Distribution of computed termination risk scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		Firings: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "firings_total",
			Help:      "Total number of firing attempts by result.",
		}, []string{"result"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Duration of database queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query_type"}),
	}

	m.RosterLoads.WithLabelValues("success")
	m.RosterLoads.WithLabelValues("failure")

	return m
}

// ObserveRoster は一覧取得の結果を記録します。
func (m *Metrics) ObserveRoster(scores []int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.RosterLoads.WithLabelValues("failure").Inc()
		return
	}
	m.RosterLoads.WithLabelValues("success").Inc()
	m.RosterSize.Set(float64(len(scores)))
	for _, score := range scores {
		m.RiskScores.Observe(float64(score))
	}
}

// ObserveFiring は解雇処理の結果ラベルを記録します。
func (m *Metrics) ObserveFiring(result string) {
	if m == nil {
		return
	}
	m.Firings.WithLabelValues(result).Inc()
}

// ObserveQuery は start からの経過時間をクエリ種別ごとに記録します。
func (m *Metrics) ObserveQuery(queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}
