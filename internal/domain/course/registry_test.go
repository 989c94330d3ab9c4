package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/alem-lms/internal/domain/shared"
)

func newTestRegistry(t *testing.T, names ...string) *Registry {
	t.Helper()
	r := NewRegistry()
	for i, name := range names {
		teacher := "teacher" + string(rune('1'+i)) + "@example.com"
		c, err := New(name, teacher)
		require.NoError(t, err)
		r.Add(c)
	}
	return r
}

func TestRegistryAddAndGet(t *testing.T) {
	r := newTestRegistry(t, "Mathematics", "Physics")
	assert.Equal(t, 2, r.Size())

	c, err := r.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", c.Name())

	c, err = r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Physics", c.Name())

	_, err = r.Get(2)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	_, err = r.Get(-1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
}

func TestRegistryAddTakesOwnership(t *testing.T) {
	r := NewRegistry()
	c, err := New("Mathematics", "teacher1@example.com")
	require.NoError(t, err)
	r.Add(c)

	// Mutating the caller's pointer after Add must not affect the stored
	// course.
	require.NoError(t, c.AddContent("leaked"))

	stored, err := r.Get(0)
	require.NoError(t, err)
	contents, err := stored.Contents()
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestRegistryRemoveShiftsIndices(t *testing.T) {
	r := newTestRegistry(t, "Mathematics", "Physics", "Chemistry")

	removed, err := r.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", removed.Name)
	assert.Equal(t, 2, r.Size())

	// The former index 1 is now reachable at index 0.
	c, err := r.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Physics", c.Name())

	c, err = r.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Chemistry", c.Name())

	_, err = r.Remove(2)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
}

func TestRegistryStaleHandleAfterRemove(t *testing.T) {
	r := newTestRegistry(t, "Mathematics", "Physics")

	h, err := r.Get(0)
	require.NoError(t, err)

	removed, err := r.Remove(0)
	require.NoError(t, err)

	// Every access through the pre-removal handle is rejected; nothing
	// reaches the removed course through it.
	assert.ErrorIs(t, h.Enroll("s1@example.com"), shared.ErrStaleHandle)
	assert.ErrorIs(t, h.AddContent("X"), shared.ErrStaleHandle)
	assert.ErrorIs(t, h.AddGrade("s1@example.com", 95), shared.ErrStaleHandle)
	_, err = h.Contents()
	assert.ErrorIs(t, err, shared.ErrStaleHandle)
	_, err = h.IsEnrolled("s1@example.com")
	assert.ErrorIs(t, err, shared.ErrStaleHandle)

	assert.Empty(t, removed.Students())
	assert.Empty(t, removed.Contents())

	// The surrogate ID stays readable; it never shifts.
	assert.Equal(t, removed.ID, h.ID())

	// A fresh handle at the shifted position works.
	fresh, err := r.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Physics", fresh.Name())
	require.NoError(t, fresh.Enroll("s1@example.com"))
}

func TestRegistryStaleHandleAfterAdd(t *testing.T) {
	r := newTestRegistry(t, "Mathematics")

	h, err := r.Get(0)
	require.NoError(t, err)

	extra, err := New("Physics", "teacher2@example.com")
	require.NoError(t, err)
	r.Add(extra)

	assert.ErrorIs(t, h.AddContent("X"), shared.ErrStaleHandle)
}

func TestRegistryGeneration(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, uint64(0), r.Generation())

	c, err := New("Mathematics", "teacher1@example.com")
	require.NoError(t, err)
	r.Add(c)
	assert.Equal(t, uint64(1), r.Generation())

	_, err = r.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), r.Generation())

	// Failed removals are not structural mutations.
	_, err = r.Remove(0)
	require.Error(t, err)
	assert.Equal(t, uint64(2), r.Generation())
}

func TestRegistryList(t *testing.T) {
	r := newTestRegistry(t, "Mathematics", "Physics")

	var got []Listing
	for l := range r.List() {
		got = append(got, l)
	}
	assert.Equal(t, []Listing{
		{DisplayIndex: 1, Name: "Mathematics", TeacherEmail: "teacher1@example.com"},
		{DisplayIndex: 2, Name: "Physics", TeacherEmail: "teacher2@example.com"},
	}, got)
}

func TestRegistryListRestartable(t *testing.T) {
	r := newTestRegistry(t, "Mathematics", "Physics")
	seq := r.List()

	first := 0
	for range seq {
		first++
		break
	}
	assert.Equal(t, 1, first)

	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, 2, second)
}

func TestRegistryListEmpty(t *testing.T) {
	r := NewRegistry()
	count := 0
	for range r.List() {
		count++
	}
	assert.Zero(t, count)
}

func TestRegistryTeacherOwns(t *testing.T) {
	r := newTestRegistry(t, "Mathematics")
	assert.True(t, r.TeacherOwns("teacher1@example.com"))
	assert.False(t, r.TeacherOwns("teacher2@example.com"))
}
