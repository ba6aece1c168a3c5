package prototype_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sghaida/creational/prototype"
)

var wantBooks = []string{
	"Book1", "Book2", "Book3", "Book4", "Book5",
	"Book6", "Book7", "Book8", "Book9", "Book10",
}

// newTestLibrary builds a Library without the production delay and returns
// the observed log entries alongside it.
func newTestLibrary(t *testing.T, title string) (*prototype.Library, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	lib := prototype.NewLibrary(title, prototype.WithDelay(0), prototype.WithLogger(zap.New(core)))
	require.NotNil(t, lib)
	return lib, logs
}

//
// -----------------------------------------------------------------------------
// NewLibrary
// -----------------------------------------------------------------------------

// TestNewLibrary_PopulatesBooks verifies the ten generated books and the title.
func TestNewLibrary_PopulatesBooks(t *testing.T) {
	t.Parallel()

	lib, _ := newTestLibrary(t, "City")

	assert.Equal(t, "City", lib.Title)
	assert.Len(t, lib.BooksList, prototype.BookCount)
	assert.Equal(t, wantBooks, lib.BooksList)
}

// TestNewLibrary_Blocks verifies construction waits at least the configured delay.
func TestNewLibrary_Blocks(t *testing.T) {
	t.Parallel()

	const delay = 50 * time.Millisecond

	start := time.Now()
	prototype.NewLibrary("Slow", prototype.WithDelay(delay), prototype.WithLogger(zap.NewNop()))

	assert.GreaterOrEqual(t, time.Since(start), delay)
}

//
// -----------------------------------------------------------------------------
// Clone
// -----------------------------------------------------------------------------

// TestLibraryClone_SharesBooks verifies the clone reuses the source's list
// and takes the new title.
func TestLibraryClone_SharesBooks(t *testing.T) {
	t.Parallel()

	src, _ := newTestLibrary(t, "Main")
	cp := src.Clone("Branch")

	assert.Equal(t, "Branch", cp.Title)
	assert.Equal(t, "Main", src.Title)
	assert.NotSame(t, src, cp)

	require.Len(t, cp.BooksList, len(src.BooksList))
	assert.Same(t, &src.BooksList[0], &cp.BooksList[0], "clone must share the backing array")
}

// TestLibraryClone_MutationVisibleAcrossLineage verifies writes through any
// instance are observed by all instances derived from the same source.
func TestLibraryClone_MutationVisibleAcrossLineage(t *testing.T) {
	t.Parallel()

	src, _ := newTestLibrary(t, "Main")
	child := src.Clone("Child")
	grandchild := child.Clone("Grandchild")

	grandchild.BooksList[0] = "Rewritten"

	assert.Equal(t, "Rewritten", src.BooksList[0])
	assert.Equal(t, "Rewritten", child.BooksList[0])
}

// TestLibraryClone_SkipsExpensiveStep verifies cloning does not log or block.
func TestLibraryClone_SkipsExpensiveStep(t *testing.T) {
	t.Parallel()

	src, logs := newTestLibrary(t, "Main")
	require.Equal(t, 1, logs.Len())

	start := time.Now()
	for i := 0; i < 100; i++ {
		_ = src.Clone("copy")
	}

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 1, logs.Len())
}

// TestLibraryClone_ZeroValue verifies cloning an empty Library keeps the list nil.
func TestLibraryClone_ZeroValue(t *testing.T) {
	t.Parallel()

	var empty prototype.Library
	cp := empty.Clone("Named")

	assert.Equal(t, "Named", cp.Title)
	assert.Nil(t, cp.BooksList)
}
