package generic

import (
	"sort"
)

// =============================================================================
// EFFECTIVE TABLE - Values keyed by effective date
// =============================================================================

// DatedValue is one entry of an effective-dated table: the value holds
// from EffectiveAt until superseded by a later entry.
type DatedValue struct {
	EffectiveAt TimePoint
	Value       Money
}

// EffectiveTable answers "which value was in effect on this date?".
// It is a total function: a query predating every entry falls back to the
// oldest known value.
type EffectiveTable struct {
	entries []DatedValue // newest first
}

// NewEffectiveTable builds a table from entries in any order.
func NewEffectiveTable(entries []DatedValue) EffectiveTable {
	sorted := make([]DatedValue, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveAt.After(sorted[j].EffectiveAt)
	})
	return EffectiveTable{entries: sorted}
}

// At returns the value whose effective date is the latest one <= date,
// or the oldest known value if the date predates all records.
func (t EffectiveTable) At(date TimePoint) Money {
	for _, e := range t.entries {
		if date.AfterOrEqual(e.EffectiveAt) {
			return e.Value
		}
	}
	if len(t.entries) == 0 {
		return ZeroMoney()
	}
	return t.entries[len(t.entries)-1].Value
}

// Entries returns the table contents, newest first.
func (t EffectiveTable) Entries() []DatedValue {
	out := make([]DatedValue, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t EffectiveTable) Len() int { return len(t.entries) }
