package history

import (
	"time"

	"github.com/rs/zerolog"

	"moviesearch/internal/debounce"
)

type observation struct {
	query       string
	resultCount int
}

// Recorder writes executed searches to the store through a debouncer, so a
// burst of keystroke-driven queries collapses into a single row. Recording
// failures are logged and never surface to the caller.
type Recorder struct {
	store     *Store
	debouncer *debounce.Debouncer[observation]
	logger    zerolog.Logger
}

func NewRecorder(store *Store, delay time.Duration, logger zerolog.Logger) *Recorder {
	r := &Recorder{
		store:  store,
		logger: logger,
	}
	r.debouncer = debounce.New(delay, r.record)
	return r
}

// Observe buffers a search for recording once the query stream goes quiet.
func (r *Recorder) Observe(query string, resultCount int) {
	if query == "" {
		return
	}
	r.debouncer.Set(observation{query: query, resultCount: resultCount})
}

// Close cancels any pending write.
func (r *Recorder) Close() {
	r.debouncer.Stop()
}

func (r *Recorder) record(o observation) {
	if err := r.store.Insert(NewSearch(o.query, o.resultCount)); err != nil {
		r.logger.Error().Err(err).Str("query", o.query).Msg("recording search")
	}
}
