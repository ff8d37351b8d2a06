package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/wizard"
)

func TestSessionCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SessionOpened()
	m.SessionOpened()
	m.SessionsExpired(0)
	m.SessionsExpired(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SessionsOpened))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ExpiredSessions))
}

func TestStepAndSubmissionCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.StepValidated(wizard.StepAccount, true)
	m.StepValidated(wizard.StepAccount, false)
	m.StepValidated(wizard.StepAccount, false)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StepValidations.WithLabelValues("account", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StepValidations.WithLabelValues("account", "failure")))

	m.SubmissionFinished(nil)
	m.SubmissionFinished(fmt.Errorf("wrapped: %w", &domain.AccountCreationError{Reason: domain.ReasonEmailTaken}))
	m.SubmissionFinished(errors.New("boom"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("email_taken")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("error")))
}

func TestAccountCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.AccountCreated()
	m.AccountFailed(domain.ReasonOrphanedIdentity)
	m.IdentityRolledBack(nil)
	m.IdentityRolledBack(errors.New("delete failed"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountFailures.WithLabelValues("orphaned_identity")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdentityRollback.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IdentityRollback.WithLabelValues("failure")))
}

func TestTrackActiveSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.TrackActiveSessions(func() int { return 7 })

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "pharmahub_wizard_sessions_active" {
			assert.Equal(t, 7.0, f.GetMetric()[0].GetGauge().GetValue())
			return
		}
	}
	t.Fatal("active sessions gauge not registered")
}
