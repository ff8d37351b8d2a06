package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceSet(t *testing.T) {
	set := NewServiceSet(ServiceVaccination, ServiceOTC, ServiceVaccination)
	assert.Equal(t, ServiceSet{ServiceOTC, ServiceVaccination}, set)
}

func TestDefaultOperatingHours(t *testing.T) {
	hours := DefaultOperatingHours()
	require.Len(t, hours, len(Weekdays))
	assert.True(t, hours[Monday].IsOpen)
	assert.True(t, hours[Friday].IsOpen)
	assert.False(t, hours[Saturday].IsOpen)
	assert.Equal(t, "09:00", hours[Sunday].Open)
	assert.Equal(t, "18:00", hours[Sunday].Close)
}

func TestOperatingHoursColumn(t *testing.T) {
	hours := DefaultOperatingHours()

	v, err := hours.Value()
	require.NoError(t, err)

	var back OperatingHours
	require.NoError(t, back.Scan(v))
	assert.Equal(t, hours, back)

	assert.Error(t, back.Scan(42))
}

func TestServiceSetScanString(t *testing.T) {
	var set ServiceSet
	require.NoError(t, set.Scan(`["consultation","otc_sales"]`))
	assert.Equal(t, ServiceSet{ServiceConsultation, ServiceOTC}, set)
}

func TestFormCloneIsDeep(t *testing.T) {
	form := NewRegistrationForm()
	form.ServicesOffered = NewServiceSet(ServiceOTC)
	form.Password = "Str0ng!Pass"

	clone := form.Clone()
	clone.OperatingHours[Monday] = DaySchedule{}
	clone.ServicesOffered[0] = ServiceCompounding

	assert.True(t, form.OperatingHours[Monday].IsOpen)
	assert.Equal(t, ServiceOTC, form.ServicesOffered[0])

	redacted := form.Redacted()
	assert.Empty(t, redacted.Password)
	assert.Equal(t, "Str0ng!Pass", form.Password)
}
