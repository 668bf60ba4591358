package affordance

import "github.com/prometheus/client_golang/prometheus"

var (
	renderedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vr_affordances",
		Name:      "rendered_total",
		Help:      "Number of buttons an affordance was rendered for.",
	}, []string{"type"})
	missesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vr_affordances",
		Name:      "frustum_misses_total",
		Help:      "Number of off-screen buttons for which no view edge intersection was found.",
	}, []string{"type"})
	framesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vr_affordances",
		Name:      "frames_total",
		Help:      "Number of rendered frames.",
	})
)

// RegisterMetrics registers the rendering metrics with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{renderedTotal, missesTotal, framesTotal} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
