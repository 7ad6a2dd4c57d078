package filesystem

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	oracleLookupsPrometheusMetrics sync.Once

	oracleLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lazypath",
			Subsystem: "filesystem",
			Name:      "oracle_lookups_total",
			Help:      "Total number of lookups performed against filesystem oracles.",
		},
		[]string{"name", "result"})
)

type metricsOracle struct {
	base Oracle

	missing   prometheus.Counter
	file      prometheus.Counter
	directory prometheus.Counter
	symlink   prometheus.Counter
	failure   prometheus.Counter
}

// NewMetricsOracle is a decorator for Oracle that exposes the total
// number of lookups performed against the underlying Oracle through
// Prometheus, labeled by the kind of entry observed. Because lazy
// parent resolution only queries the file system when a ".." component
// follows a potentially symlinked segment, this counter makes the cost
// of resolution directly observable.
func NewMetricsOracle(base Oracle, name string) Oracle {
	oracleLookupsPrometheusMetrics.Do(func() {
		prometheus.MustRegister(oracleLookupsTotal)
	})

	return &metricsOracle{
		base: base,

		missing:   oracleLookupsTotal.WithLabelValues(name, KindMissing.String()),
		file:      oracleLookupsTotal.WithLabelValues(name, KindFile.String()),
		directory: oracleLookupsTotal.WithLabelValues(name, KindDirectory.String()),
		symlink:   oracleLookupsTotal.WithLabelValues(name, KindSymlink.String()),
		failure:   oracleLookupsTotal.WithLabelValues(name, "Failure"),
	}
}

func (o *metricsOracle) Lookup(path string) (Entry, error) {
	entry, err := o.base.Lookup(path)
	if err != nil {
		o.failure.Inc()
		return Entry{}, err
	}
	switch entry.Kind {
	case KindMissing:
		o.missing.Inc()
	case KindFile:
		o.file.Inc()
	case KindDirectory:
		o.directory.Inc()
	case KindSymlink:
		o.symlink.Inc()
	}
	return entry, nil
}
