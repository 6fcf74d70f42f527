package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodIDFor(t *testing.T) {
	d := time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-08", PeriodIDFor(d))

	jan := time.Date(2025, time.January, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-01", PeriodIDFor(jan))
}

func TestIsLateEntry(t *testing.T) {
	posting := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	onTime := Transaction{PostingDate: posting, SystemEntryDate: posting}
	assert.False(t, onTime.IsLateEntry())

	late := Transaction{PostingDate: posting, SystemEntryDate: posting.AddDate(0, 0, 3)}
	assert.True(t, late.IsLateEntry())

	// Recording before the accounting date is not a late entry.
	early := Transaction{PostingDate: posting, SystemEntryDate: posting.AddDate(0, 0, -1)}
	assert.False(t, early.IsLateEntry())
}

func TestBranchScopeMatches(t *testing.T) {
	assert.True(t, ScopeAllBranches.Matches("loc-1"))
	assert.True(t, BranchScope("").Matches("loc-1"))
	assert.True(t, BranchScope("loc-1").Matches("loc-1"))
	assert.False(t, BranchScope("loc-1").Matches("loc-2"))
}

func TestEntryCategoryIsValid(t *testing.T) {
	assert.True(t, CategoryTransfer.IsValid())
	assert.True(t, CategoryVehicleSale.IsValid())
	assert.False(t, EntryCategory("SNACKS").IsValid())
}
