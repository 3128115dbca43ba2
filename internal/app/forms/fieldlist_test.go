package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/campusboard/internal/app/schema"
)

func TestFieldListAppendAssignsSequentialKeys(t *testing.T) {
	l := NewFieldList()

	k1 := l.Append(schema.QualificationDraft{Degree: "B.Tech"})
	k2 := l.Append(schema.QualificationDraft{Degree: "M.Tech"})
	k3 := l.Append(schema.QualificationDraft{Degree: "Ph.D."})

	assert.Equal(t, uint64(1), k1)
	assert.Equal(t, uint64(2), k2)
	assert.Equal(t, uint64(3), k3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []uint64{1, 2, 3}, l.Keys())
}

func TestFieldListKeysNeverReused(t *testing.T) {
	l := NewFieldList()
	l.Append(schema.QualificationDraft{Degree: "B.Tech"})
	l.Append(schema.QualificationDraft{Degree: "M.Tech"})

	l.Remove(1)
	require.Equal(t, 1, l.Len())

	k := l.Append(schema.QualificationDraft{Degree: "Ph.D."})
	assert.Equal(t, uint64(3), k)
	assert.Equal(t, []uint64{1, 3}, l.Keys())
}

func TestFieldListRemove(t *testing.T) {
	l := NewFieldList()
	l.Append(schema.QualificationDraft{Degree: "B.Tech"})
	l.Append(schema.QualificationDraft{Degree: "M.Tech"})
	l.Append(schema.QualificationDraft{Degree: "Ph.D."})

	l.Remove(1)
	assert.Equal(t, []uint64{1, 3}, l.Keys())
	assert.Equal(t, "Ph.D.", l.Rows()[1].Draft.Degree)

	// out-of-range indexes are no-ops
	l.Remove(-1)
	l.Remove(5)
	assert.Equal(t, 2, l.Len())

	// removing down to zero rows is allowed
	l.Remove(1)
	l.Remove(0)
	assert.Equal(t, 0, l.Len())
}

func TestFieldListSet(t *testing.T) {
	l := NewFieldList()
	l.Append(schema.QualificationDraft{Degree: "B.Tech"})
	l.Append(schema.QualificationDraft{Degree: "M.Tech"})

	l.Set(1, schema.QualificationDraft{Degree: "M.Sc.", College: "IISc"})
	l.Set(9, schema.QualificationDraft{Degree: "ignored"})

	drafts := l.Drafts()
	require.Len(t, drafts, 2)
	assert.Equal(t, "B.Tech", drafts[0].Degree)
	assert.Equal(t, "M.Sc.", drafts[1].Degree)
	assert.Equal(t, "IISc", drafts[1].College)
	assert.Equal(t, []uint64{1, 2}, l.Keys())
}

func TestFieldListRowsReturnsCopy(t *testing.T) {
	l := NewFieldList()
	l.Append(schema.QualificationDraft{Degree: "B.Tech"})

	rows := l.Rows()
	rows[0].Draft.Degree = "mutated"

	assert.Equal(t, "B.Tech", l.Rows()[0].Draft.Degree)
}
