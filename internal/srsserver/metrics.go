package srsserver

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "srs_rpc_duration_seconds",
		Help:    "Latency of SchedulingService calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure", "code"})

	reviewsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "srs_reviews_total",
		Help: "Ratings committed, by rating and whether they revised an earlier one",
	}, []string{"rating", "revision"})
)

// NewMetricsInterceptor records the latency and result code of every call.
func NewMetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			rpcDuration.WithLabelValues(req.Spec().Procedure, code).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}
