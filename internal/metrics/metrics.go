// Package metrics exposes signup funnel counters to Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/wizard"
)

const namespace = "pharmahub"

type Metrics struct {
	SessionsOpened   prometheus.Counter
	ExpiredSessions  prometheus.Counter
	StepValidations  *prometheus.CounterVec
	Submissions      *prometheus.CounterVec
	AccountsCreated  prometheus.Counter
	AccountFailures  *prometheus.CounterVec
	IdentityRollback *prometheus.CounterVec

	reg prometheus.Registerer
}

// New registers the signup metrics on reg, or on the default registry when
// reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_sessions_opened_total",
			Help:      "Total number of signup wizard sessions opened",
		}),
		ExpiredSessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_sessions_expired_total",
			Help:      "Total number of idle wizard sessions dropped by the sweeper",
		}),
		StepValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_step_validations_total",
			Help:      "Step gate checks by step and outcome",
		}, []string{"step", "result"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wizard_submissions_total",
			Help:      "Finished wizard submissions by outcome",
		}, []string{"result"}),
		AccountsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accounts_created_total",
			Help:      "Total number of accounts created with a tenant profile",
		}),
		AccountFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_creation_failures_total",
			Help:      "Failed account creations by reason",
		}, []string{"reason"}),
		IdentityRollback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_rollbacks_total",
			Help:      "Identity deletions after a failed profile write, by outcome",
		}, []string{"result"}),
		reg: reg,
	}
}

// TrackActiveSessions exports the live session count as a gauge.
func (m *Metrics) TrackActiveSessions(count func() int) {
	promauto.With(m.reg).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "wizard_sessions_active",
		Help:      "Wizard sessions currently held in memory",
	}, func() float64 {
		return float64(count())
	})
}

func (m *Metrics) SessionOpened() {
	m.SessionsOpened.Inc()
}

func (m *Metrics) SessionsExpired(n int) {
	if n > 0 {
		m.ExpiredSessions.Add(float64(n))
	}
}

func (m *Metrics) StepValidated(step wizard.StepID, passed bool) {
	m.StepValidations.WithLabelValues(string(step), outcome(passed)).Inc()
}

func (m *Metrics) SubmissionFinished(err error) {
	m.Submissions.WithLabelValues(submissionResult(err)).Inc()
}

func (m *Metrics) AccountCreated() {
	m.AccountsCreated.Inc()
}

func (m *Metrics) AccountFailed(reason domain.AccountCreationReason) {
	m.AccountFailures.WithLabelValues(string(reason)).Inc()
}

func (m *Metrics) IdentityRolledBack(err error) {
	m.IdentityRollback.WithLabelValues(outcome(err == nil)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func submissionResult(err error) string {
	if err == nil {
		return "success"
	}
	var ace *domain.AccountCreationError
	if errors.As(err, &ace) {
		return string(ace.Reason)
	}
	return "error"
}
