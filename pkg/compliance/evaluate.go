package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-errors/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/kaytu-io/kaytu-m365-audit/pkg/m365"
	"github.com/kaytu-io/kaytu-m365-audit/pkg/types"
)

var EvaluateChecksCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "m365audit",
	Subsystem: "compliance",
	Name:      "evaluate_checks_total",
	Help:      "Count of evaluated compliance checks",
}, []string{"control_id", "status"})

var EvaluateChecksDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "m365audit",
	Subsystem: "compliance",
	Name:      "evaluate_checks_duration_seconds",
	Help:      "Duration of evaluated compliance checks",
	Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
}, []string{"control_id", "status"})

// Evaluate runs one check to a terminal verdict. Nothing escapes: a panic
// or any error from the body becomes an Error result, a missing tenant
// capability becomes Manual with an explanatory finding, and otherwise the
// findings aggregate into Pass, Fail, or Manual. The result is built fresh
// on every call and never reused.
func Evaluate(ctx context.Context, logger *zap.Logger, s *m365.Session, check Check) (result types.ComplianceResult) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err := errors.Wrap(r, 2)
			logger.Error("check panicked",
				zap.String("control_id", check.Control.ID),
				zap.String("stack", err.ErrorStack()))
			result = types.NewErrorResult(fmt.Errorf("panicked: %v", r))
		}
		status := string(result.Status)
		EvaluateChecksDuration.WithLabelValues(check.Control.ID, status).Observe(time.Since(startTime).Seconds())
		EvaluateChecksCount.WithLabelValues(check.Control.ID, status).Inc()
	}()

	findings, err := check.Run(ctx, s)
	if err != nil {
		if capErr := m365.AsCapabilityError(err); capErr != nil {
			logger.Warn("capability unavailable",
				zap.String("control_id", check.Control.ID),
				zap.String("capability", capErr.Capability))
			finding := types.NewManualFinding(capErr.Service).
				With("MissingCapability", capErr.Capability).
				With("Reason", capErr.Message)
			return types.NewComplianceResult([]types.Finding{finding})
		}
		logger.Error("check failed",
			zap.String("control_id", check.Control.ID),
			zap.Error(err))
		return types.NewErrorResult(err)
	}

	return types.NewComplianceResult(findings)
}
