package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreshnessRecord_Stale(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just fetched", 0, false},
		{"six days old", 6 * 24 * time.Hour, false},
		{"exactly seven days old", 7 * 24 * time.Hour, false},
		{"eight days old", 8 * 24 * time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := FreshnessRecord{LastFetchedAtMs: now.Add(-tt.age).UnixMilli()}
			assert.Equal(t, tt.want, rec.Stale(now))
		})
	}
}

func TestFreshnessRecord_Age(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	rec := FreshnessRecord{LastFetchedAtMs: now.Add(-48 * time.Hour).UnixMilli()}

	assert.Equal(t, 48*time.Hour, rec.Age(now))
}
