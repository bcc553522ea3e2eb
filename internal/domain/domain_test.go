package domain_test

import (
	"testing"
	"time"

	"talenthub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormatPostedDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"minutes round up to one day", 30 * time.Minute, "1 day ago"},
		{"exactly one day", 24 * time.Hour, "1 day ago"},
		{"partial second day rounds up", 25 * time.Hour, "2 days ago"},
		{"under a week stays in days", 6 * 24 * time.Hour, "6 days ago"},
		{"one week", 7 * 24 * time.Hour, "1 weeks ago"},
		{"partial weeks round up", 8 * 24 * time.Hour, "2 weeks ago"},
		{"under a month stays in weeks", 29 * 24 * time.Hour, "5 weeks ago"},
		{"one month", 30 * 24 * time.Hour, "1 months ago"},
		{"partial months round up", 45 * 24 * time.Hour, "2 months ago"},
		{"one year", 365 * 24 * time.Hour, "1 years ago"},
		{"partial years round up", 400 * 24 * time.Hour, "2 years ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.FormatPostedDate(now.Add(-tc.ago), now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, domain.RoleEmployer, domain.ParseRole("employer"))
	assert.Equal(t, domain.RoleAdmin, domain.ParseRole(" ADMIN "))
	assert.Equal(t, domain.RoleApplicant, domain.ParseRole("applicant"))
	// Unknown and empty default to applicant
	assert.Equal(t, domain.RoleApplicant, domain.ParseRole("superuser"))
	assert.Equal(t, domain.RoleApplicant, domain.ParseRole(""))
}

func TestParseJobType(t *testing.T) {
	got, err := domain.ParseJobType("full_time")
	assert.NoError(t, err)
	assert.Equal(t, domain.JobTypeFullTime, got)

	_, err = domain.ParseJobType("freelance")
	assert.Error(t, err)
}

func TestParseApplicationStatus(t *testing.T) {
	got, err := domain.ParseApplicationStatus("shortlisted")
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusShortlisted, got)

	// REVIEWED is a stored state but not an accepted update target
	_, err = domain.ParseApplicationStatus("REVIEWED")
	assert.Error(t, err)

	_, err = domain.ParseApplicationStatus("PENDING")
	assert.Error(t, err)
}

func TestPagination(t *testing.T) {
	t.Run("computes pages and flags", func(t *testing.T) {
		p := domain.NewPagination(2, 10, 35)
		assert.Equal(t, 2, p.CurrentPage)
		assert.Equal(t, 4, p.TotalPages)
		assert.Equal(t, int64(35), p.TotalItems)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("clamps out-of-range inputs", func(t *testing.T) {
		p := domain.NewPagination(-3, 500, 5)
		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("empty listing has zero pages", func(t *testing.T) {
		p := domain.NewPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
	})
}

func TestProfileBackfillEmpty(t *testing.T) {
	assert.True(t, domain.ProfileBackfill{}.Empty())
	assert.False(t, domain.ProfileBackfill{Phone: "+123"}.Empty())
	now := time.Now()
	assert.False(t, domain.ProfileBackfill{AvailableDate: &now}.Empty())
}
