package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var noon = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return noon.AddDate(0, 0, offset)
}

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		clock  string
		manual Status
		want   Status
	}{
		{
			name: "yesterday is completed",
			date: day(-1),
			want: StatusCompleted,
		},
		{
			name: "last month is completed",
			date: noon.AddDate(0, -1, 0),
			want: StatusCompleted,
		},
		{
			name: "today is ongoing",
			date: day(0),
			want: StatusOngoing,
		},
		{
			name:  "today with a clock time already passed is still ongoing",
			date:  day(0),
			clock: "06:00",
			want:  StatusOngoing,
		},
		{
			name:  "today with a clock time not yet reached is still ongoing",
			date:  day(0),
			clock: "23:30",
			want:  StatusOngoing,
		},
		{
			name: "tomorrow is upcoming",
			date: day(1),
			want: StatusUpcoming,
		},
		{
			name: "next year is upcoming",
			date: noon.AddDate(1, 0, 0),
			want: StatusUpcoming,
		},
		{
			name: "missing date is upcoming",
			want: StatusUpcoming,
		},
		{
			name:   "manual cancelled wins over past date",
			date:   day(-10),
			manual: StatusCancelled,
			want:   StatusCancelled,
		},
		{
			name:   "manual postponed wins over future date",
			date:   day(10),
			manual: StatusPostponed,
			want:   StatusPostponed,
		},
		{
			name:   "non-manual stored status does not override derivation",
			date:   day(-1),
			manual: StatusUpcoming,
			want:   StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStatus(tt.date, tt.clock, tt.manual, noon)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParticipation_AvailableSpots(t *testing.T) {
	tests := []struct {
		name string
		p    Participation
		want int
	}{
		{
			name: "spots remaining",
			p:    Participation{MaximumParticipants: 10, TotalParticipants: 4},
			want: 6,
		},
		{
			name: "overbooked clamps to zero",
			p:    Participation{MaximumParticipants: 10, TotalParticipants: 12},
			want: 0,
		},
		{
			name: "missing fields count as zero",
			p:    Participation{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.AvailableSpots())
		})
	}
}

func TestActivity_CanRegister(t *testing.T) {
	open := Participation{MaximumParticipants: 10, TotalParticipants: 3}

	tests := []struct {
		name     string
		activity Activity
		want     bool
	}{
		{
			name:     "upcoming with spots",
			activity: Activity{Date: day(3), Participation: open},
			want:     true,
		},
		{
			name:     "ongoing with spots",
			activity: Activity{Date: day(0), Participation: open},
			want:     true,
		},
		{
			name:     "completed never registers",
			activity: Activity{Date: day(-3), Participation: open},
			want:     false,
		},
		{
			name:     "cancelled never registers",
			activity: Activity{Date: day(3), ManualStatus: StatusCancelled, Participation: open},
			want:     false,
		},
		{
			name: "full activity never registers",
			activity: Activity{
				Date:          day(3),
				Participation: Participation{MaximumParticipants: 5, TotalParticipants: 5},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.activity.CanRegister(noon))
		})
	}
}

func TestTargetTime(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC), TargetTime(date, "18:45"))
	assert.Equal(t, date, TargetTime(date, ""))
	assert.Equal(t, date, TargetTime(date, "not-a-time"))
	assert.True(t, TargetTime(time.Time{}, "10:00").IsZero())
}
