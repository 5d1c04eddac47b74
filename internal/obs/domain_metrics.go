package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// BasketOpsTotal counts basket mutations by operation and result.
	BasketOpsTotal *prometheus.CounterVec
	// SearchQueriesTotal counts catalog searches by outcome.
	SearchQueriesTotal *prometheus.CounterVec
	// BasketLines tracks the current number of basket lines per shop.
	BasketLines *prometheus.GaugeVec
	// CatalogProducts tracks the number of loaded catalog products per shop.
	CatalogProducts *prometheus.GaugeVec
	// EventsEmittedTotal counts emitted domain events per topic.
	EventsEmittedTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		BasketOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basket_ops_total",
			Help:      "Count of basket mutation outcomes.",
		}, []string{"op", "result"})
		SearchQueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_queries_total",
			Help:      "Count of catalog search queries by outcome.",
		}, []string{"outcome"})
		BasketLines = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "basket_lines",
			Help:      "Current number of basket lines per shop.",
		}, []string{"shop"})
		CatalogProducts = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Number of catalog products loaded per shop.",
		}, []string{"shop"})
		EventsEmittedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_emitted_total",
			Help:      "Count of emitted domain events per topic.",
		}, []string{"topic"})
		reg.MustRegister(BasketOpsTotal, SearchQueriesTotal, BasketLines, CatalogProducts, EventsEmittedTotal)
	})
}
