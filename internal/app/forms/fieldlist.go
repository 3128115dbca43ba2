// Package forms implements the dashboard's editing sessions: the nested
// qualification field-list and the modal form orchestrators that turn drafts
// into schema-validated payloads.
package forms

import "github.com/meera/campusboard/internal/app/schema"

// QualificationRow is one entry of the qualification field-list. Key is a
// synthetic list-identity value used solely to keep row rendering stable; it
// carries no business meaning and never appears in persisted payloads.
type QualificationRow struct {
	Key   uint64
	Draft schema.QualificationDraft
}

// FieldList maintains the ordered, mutable list of qualification rows inside
// one in-progress faculty form. Row order always matches insertion/removal
// history; keys are never reused across the lifetime of the list, including
// after removals.
type FieldList struct {
	nextKey uint64
	rows    []QualificationRow
}

// NewFieldList returns an empty field-list.
func NewFieldList() *FieldList {
	return &FieldList{}
}

// Append inserts one new row at the end with the given initial values and
// returns its freshly assigned key.
func (l *FieldList) Append(initial schema.QualificationDraft) uint64 {
	l.nextKey++
	key := l.nextKey
	l.rows = append(l.rows, QualificationRow{Key: key, Draft: initial})
	return key
}

// Remove deletes the row at index. Surviving rows keep their keys and relative
// order. An out-of-range index is a silent no-op. Removing the last remaining
// row is permitted here; the "at least one qualification" rule is enforced at
// validation time only.
func (l *FieldList) Remove(index int) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	l.rows = append(l.rows[:index], l.rows[index+1:]...)
}

// Set replaces the draft of the row at index. Out-of-range indexes are
// ignored.
func (l *FieldList) Set(index int, draft schema.QualificationDraft) {
	if index < 0 || index >= len(l.rows) {
		return
	}
	l.rows[index].Draft = draft
}

// Len returns the number of rows.
func (l *FieldList) Len() int {
	return len(l.rows)
}

// Rows returns a copy of the rows in order.
func (l *FieldList) Rows() []QualificationRow {
	out := make([]QualificationRow, len(l.rows))
	copy(out, l.rows)
	return out
}

// Keys returns the keys of all rows in order.
func (l *FieldList) Keys() []uint64 {
	keys := make([]uint64, len(l.rows))
	for i, row := range l.rows {
		keys[i] = row.Key
	}
	return keys
}

// Drafts returns the row drafts in order, without their list-identity keys.
func (l *FieldList) Drafts() []schema.QualificationDraft {
	drafts := make([]schema.QualificationDraft, len(l.rows))
	for i, row := range l.rows {
		drafts[i] = row.Draft
	}
	return drafts
}
