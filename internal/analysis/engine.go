package analysis

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"mwa/internal/models"
	"mwa/internal/providers"
	"mwa/internal/structures"
)

const trajectoryContacts = 10

// Engine runs every analysis component over an immutable collection and
// merges the derived tables into one results snapshot. Per-year text
// partitions share no mutable state and fan out across workers; the merge is
// a reduce after all partitions complete. Cancellation is all-or-nothing: a
// cancelled run yields no results.
type Engine struct {
	conf      *structures.Config
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	sentiment *SentimentAnalyzer
	bp        *Boilerplate
}

func NewEngine(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, cache providers.CacheProviderInterface) *Engine {
	a := &conf.Analysis
	return &Engine{
		conf:      conf,
		logger:    logger,
		metrics:   metrics,
		sentiment: NewSentimentAnalyzer(cache),
		bp:        NewBoilerplate(a.BoilerplatePhrases, a.BoilerplateWords),
	}
}

// yearPartition is the text-corpus unit of work: one year's owner-sent
// tokenized messages.
type yearPartition struct {
	year     int
	messages [][]string
}

// partitionOutcome is the explicit per-partition result: computed rows,
// skipped for insufficient data, or failed with a reason. Never a panic path.
type partitionOutcome struct {
	year     int
	phrases  []models.PhraseCount
	topics   []models.Topic
	failures []models.PartitionFailure
}

func (e *Engine) Run(ctx context.Context, col *models.Collection) (*models.Results, error) {
	if col == nil || col.Len() == 0 {
		return nil, models.ErrEmptyCollection
	}
	start := time.Now()
	a := &e.conf.Analysis

	res := &models.Results{
		GeneratedAt: start,
		Messages:    col.Len(),
		Contacts:    len(col.Contacts()),
	}

	res.Relationships = timed(e, "relationships", func() []models.RelationshipMetric {
		return Relationships(col, a)
	})
	res.Rankings = timed(e, "rankings", func() []models.YearlyRanking {
		return YearlyRankings(col)
	})
	res.RankShifts = RankShifts(res.Rankings, col.Years(), a)
	res.Trajectories = Trajectories(res.Rankings, col.Years(), topContacts(res.Relationships, trajectoryContacts))
	res.Streaks = timed(e, "streaks", func() []models.Streak {
		return Streaks(col)
	})
	res.Volume = YearlyVolumes(col)
	res.Heatmap = HourDayHeatmap(col)
	res.PeakHours = PeakHours(col)
	res.QuestionsByYear = QuestionRatiosByYear(col)
	res.QuestionsByContact = QuestionRatiosByContact(col, a)

	partitions := buildYearPartitions(col)

	docs := make(map[int][]string, len(partitions))
	for _, p := range partitions {
		var all []string
		for _, msg := range p.messages {
			all = append(all, msg...)
		}
		docs[p.year] = all
	}
	res.Terms = timed(e, "terms", func() []models.TermScore {
		return YearTerms(docs, e.bp, a)
	})

	outcomes := make([]partitionOutcome, len(partitions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, p := range partitions {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = e.analyzeYear(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		res.Phrases = append(res.Phrases, o.phrases...)
		res.Topics = append(res.Topics, o.topics...)
		res.Failures = append(res.Failures, o.failures...)
	}

	res.Sentiment = timed(e, "sentiment", func() []models.ContactSentiment {
		return e.sentiment.ByContact(col, a)
	})

	e.metrics.ObserveRunDuration(time.Since(start))
	e.logger.Infof(providers.TypeAnalysis, "Run complete: %d messages, %d contacts, %d years, %d failures in %s",
		res.Messages, res.Contacts, len(col.Years()), len(res.Failures), time.Since(start).Round(time.Millisecond))
	return res, nil
}

// analyzeYear runs the per-year text sub-analyses with failure isolation:
// a panicking or erroring sub-analysis marks its partition failed and the
// rest of the run proceeds.
func (e *Engine) analyzeYear(p yearPartition) partitionOutcome {
	out := partitionOutcome{year: p.year}

	err := guarded(func() {
		out.phrases = MinePhrases(p.year, p.messages, e.bp, &e.conf.Analysis)
	})
	if err != nil {
		out.failures = append(out.failures, models.PartitionFailure{
			Component: "phrases", Partition: fmt.Sprintf("%d", p.year), Reason: err.Error(),
		})
		e.metrics.IncPartitionsFailed("phrases")
		e.logger.Warnf(providers.TypeAnalysis, "Phrase mining failed for %d: %s", p.year, err)
	} else {
		e.metrics.IncPartitionsComputed("phrases")
	}

	if len(p.messages) < e.conf.Analysis.TopicMinMessages {
		e.metrics.IncPartitionsSkipped("topics", "insufficient_data")
		e.logger.Debugf(providers.TypeAnalysis, "Skipping topics for %d: %d qualifying messages", p.year, len(p.messages))
		return out
	}

	err = guarded(func() {
		topics, terr := ExtractTopics(p.year, p.messages, e.bp, &e.conf.Analysis)
		if terr != nil {
			panic(terr)
		}
		out.topics = topics
	})
	if err != nil {
		out.failures = append(out.failures, models.PartitionFailure{
			Component: "topics", Partition: fmt.Sprintf("%d", p.year), Reason: err.Error(),
		})
		e.metrics.IncPartitionsFailed("topics")
		e.logger.Warnf(providers.TypeAnalysis, "Topic extraction failed for %d: %s", p.year, err)
	} else {
		e.metrics.IncPartitionsComputed("topics")
	}
	return out
}

// guarded converts a panic inside a sub-analysis into an ordinary error.
func guarded(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

// buildYearPartitions groups owner-sent, non-empty, tokenizable messages by
// calendar year. Messages without text take part in count metrics only.
func buildYearPartitions(col *models.Collection) []yearPartition {
	byYear := make(map[int][][]string)
	for _, key := range col.Contacts() {
		for _, m := range col.ByContact(key) {
			if !m.FromOwner() || m.Text == "" {
				continue
			}
			tokens := Tokenize(m.Text)
			if len(tokens) == 0 {
				continue
			}
			byYear[m.Year()] = append(byYear[m.Year()], tokens)
		}
	}
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]yearPartition, 0, len(years))
	for _, y := range years {
		out = append(out, yearPartition{year: y, messages: byYear[y]})
	}
	return out
}

func topContacts(rels []models.RelationshipMetric, n int) []string {
	if n > len(rels) {
		n = len(rels)
	}
	keys := make([]string, 0, n)
	for _, r := range rels[:n] {
		keys = append(keys, r.ContactKey)
	}
	return keys
}

func (e *Engine) workers() int {
	if e.conf.Analysis.Workers > 0 {
		return e.conf.Analysis.Workers
	}
	return runtime.NumCPU()
}

func timed[T any](e *Engine, component string, fn func() T) T {
	start := time.Now()
	out := fn()
	e.metrics.ObserveComponentDuration(component, time.Since(start))
	return out
}
