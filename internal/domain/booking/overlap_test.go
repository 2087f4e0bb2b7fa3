package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", "2025-11-17 "+hm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "09:00", "09:30", "09:00", "09:30", true},
		{"partial overlap at start", "09:00", "09:30", "09:15", "09:45", true},
		{"partial overlap at end", "09:15", "09:45", "09:00", "09:30", true},
		{"b inside a", "09:00", "10:00", "09:15", "09:30", true},
		{"a inside b", "09:15", "09:30", "09:00", "10:00", true},
		{"touching, a before b", "09:00", "09:30", "09:30", "10:00", false},
		{"touching, b before a", "09:30", "10:00", "09:00", "09:30", false},
		{"disjoint", "09:00", "09:30", "11:00", "11:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}
