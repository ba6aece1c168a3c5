package prototype

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	// DefaultExpensiveDelay is how long NewLibrary blocks unless WithDelay says otherwise.
	DefaultExpensiveDelay = 3 * time.Second

	// BookCount is the number of books generated for every new Library.
	BookCount = 10

	expensiveMessage = "<><><><><><>Expensive Process<><><><><><"
)

// Library holds a title and a list of books.
//
// A zero Library has neither. A Library returned by NewLibrary always has a
// fully populated BooksList.
type Library struct {
	Title     string
	BooksList []string
}

// LibraryOption customizes NewLibrary.
type LibraryOption func(*libraryConfig)

type libraryConfig struct {
	logger *zap.Logger
	delay  time.Duration
}

// WithLogger sets the logger that receives the diagnostic line written once
// the expensive step completes. Nil is ignored.
func WithLogger(logger *zap.Logger) LibraryOption {
	return func(c *libraryConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDelay overrides how long the expensive step blocks. Negative values
// are treated as zero.
func WithDelay(d time.Duration) LibraryOption {
	return func(c *libraryConfig) {
		c.delay = max(d, 0)
	}
}

// NewLibrary builds a Library the expensive way: it generates
// "Book1".."Book10", blocks for the configured delay and logs a diagnostic
// line. It cannot be cancelled.
//
// The default logger is zap.L(), which discards everything until the process
// installs one with zap.ReplaceGlobals.
func NewLibrary(title string, opts ...LibraryOption) *Library {
	return &Library{
		Title:     title,
		BooksList: loadBooks(newLibraryConfig(opts...)),
	}
}

// Clone returns a Library with the given title that shares the receiver's
// BooksList. The expensive step is not repeated and the list is not copied.
func (l *Library) Clone(title string) *Library {
	return &Library{
		Title:     title,
		BooksList: l.BooksList,
	}
}

// newLibraryConfig applies opts in order over the defaults; later options win.
func newLibraryConfig(opts ...LibraryOption) libraryConfig {
	cfg := libraryConfig{
		logger: zap.L(),
		delay:  DefaultExpensiveDelay,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func loadBooks(cfg libraryConfig) []string {
	books := lo.Times(BookCount, func(i int) string {
		return fmt.Sprintf("Book%d", i+1)
	})

	time.Sleep(cfg.delay)
	cfg.logger.Info(expensiveMessage, zap.Int("books", len(books)), zap.Duration("delay", cfg.delay))

	return books
}
