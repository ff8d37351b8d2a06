package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepTableIsConsistent(t *testing.T) {
	rules := NewRules()
	seen := map[string]bool{}

	for i, s := range Steps() {
		idx, err := s.ID.Index()
		require.NoError(t, err, s.ID)
		assert.Equal(t, i, idx, "step %s is out of order", s.ID)
		byID, err := StepByID(s.ID)
		require.NoError(t, err)
		assert.Equal(t, s, byID)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Fields)

		for _, f := range s.Fields {
			assert.True(t, rules.Known(f), "field %s has no rule", f)
			assert.False(t, seen[f], "field %s belongs to two steps", f)
			seen[f] = true
		}
	}
	assert.Equal(t, 5, StepCount())
}

func TestStepIDIndexRejectsUnknown(t *testing.T) {
	_, err := StepID("payment").Index()
	assert.Error(t, err)
	_, err = StepByID("payment")
	assert.Error(t, err)
}

func TestStepsReturnsCopy(t *testing.T) {
	s := Steps()
	s[0].Fields[0] = "mutated"
	assert.Equal(t, FieldEmail, Steps()[0].Fields[0])
}
