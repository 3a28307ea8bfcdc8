package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayBoundsUTC(t *testing.T) {
	in := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	start, end := DayBoundsUTC(in)

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestDayBoundsUTCNormalizesZone(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)
	// 23:30 local is already the next UTC day.
	in := time.Date(2025, time.March, 14, 23, 30, 0, 0, zone)
	start, _ := DayBoundsUTC(in)

	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestFormatters(t *testing.T) {
	in := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, "2025-03-14T15:09:26Z", FormatTime(in))
	assert.Equal(t, "2025-03-14", FormatDate(in))
}

func TestSanitize(t *testing.T) {
	email := "  ana@mail.com "
	in := struct {
		Name  string
		Email *string
		Tags  []string
		Count int
		Skip  *int
	}{
		Name:  "  Ana  ",
		Email: &email,
		Tags:  []string{" anxiety ", "sleep"},
		Count: 3,
	}

	Sanitize(&in)

	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, "ana@mail.com", *in.Email)
	assert.Equal(t, []string{"anxiety", "sleep"}, in.Tags)
	assert.Equal(t, 3, in.Count)
}

func TestSanitizeNilPointerField(t *testing.T) {
	in := struct {
		Email *string
	}{}

	assert.NotPanics(t, func() { Sanitize(&in) })
	assert.Nil(t, in.Email)
}
