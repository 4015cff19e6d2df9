package summary

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/finsight/pkg/models"
)

// Collector summarizes every entry of a response envelope.
type Collector struct {
	dispatcher  *Dispatcher
	concurrency int
}

// NewCollector returns a collector running at most concurrency analyzers at
// once. Values below 2 run them sequentially. A nil dispatcher uses the
// defaults.
func NewCollector(d *Dispatcher, concurrency int) *Collector {
	if d == nil {
		d = NewDispatcher()
	}
	return &Collector{dispatcher: d, concurrency: concurrency}
}

// Collect summarizes each envelope entry that has a category and data,
// using the envelope's detected ticker. Entries whose analysis is absent
// are dropped. The result keeps envelope order whatever the concurrency.
func (c *Collector) Collect(env *models.Envelope) *models.SummaryMap {
	out := models.NewSummaryMap()
	if env == nil {
		return out
	}

	var jobs []models.EnvelopeEntry
	for _, e := range env.Entries {
		if e.Tag == models.MetadataKey || e.Category == "" || !e.HasData() {
			continue
		}
		jobs = append(jobs, e)
	}

	start := time.Now()
	ticker := env.Ticker()
	results := make([]models.Summary, len(jobs))

	if c.concurrency < 2 || len(jobs) < 2 {
		for i, e := range jobs {
			results[i] = c.dispatcher.Summarize(e.Tag, e.Data, ticker)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.concurrency)
		for i, e := range jobs {
			g.Go(func() error {
				results[i] = c.dispatcher.Summarize(e.Tag, e.Data, ticker)
				return nil
			})
		}
		_ = g.Wait()
	}

	for i, e := range jobs {
		if results[i] == nil {
			continue
		}
		out.Set(e.Tag, models.SummaryEntry{Type: e.Category, Summary: results[i]})
	}

	log.Debug().
		Int("entries", len(jobs)).
		Int("summaries", out.Len()).
		Str("ticker", ticker).
		Dur("elapsed", time.Since(start)).
		Msg("envelope collected")
	return out
}

// Collect summarizes an envelope sequentially with default options.
func Collect(env *models.Envelope) *models.SummaryMap {
	return NewCollector(nil, 1).Collect(env)
}
