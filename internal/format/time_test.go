package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRelative(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "zero time", t: time.Time{}, want: "never"},
		{name: "seconds ago", t: now.Add(-30 * time.Second), want: "just now"},
		{name: "minutes ago", t: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours ago", t: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days ago", t: now.Add(-49 * time.Hour), want: "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Relative(tt.t))
		})
	}
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2024, time.January, 23, 15, 4, 0, 0, time.Local)
	require.Equal(t, "23/01/2024 15:04", DateTime(ts))
}
