// Package pipeline assembles records: it orchestrates the scorer set, the
// connection detector, the router, and the encoder into one immutable record
// per submission, then hands the result to the persistence collaborator.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/PaniclandUSA/Esper-Thesis/internal/assess"
	"github.com/PaniclandUSA/Esper-Thesis/internal/connect"
	"github.com/PaniclandUSA/Esper-Thesis/internal/encode"
	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
	"github.com/PaniclandUSA/Esper-Thesis/internal/route"
	"github.com/PaniclandUSA/Esper-Thesis/internal/worker"
)

// Corpus is the persistence collaborator: a whole-file load before scoring,
// a whole-file atomic replace after.
type Corpus interface {
	Load() ([]model.Record, error)
	Replace([]model.Record) error
}

// Engine runs submissions through the assessment pipeline.
type Engine struct {
	corpus   Corpus
	detector *connect.Detector
	seq      *encode.SequenceTable
	now      func() time.Time
	log      *zap.SugaredLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine over the given corpus.
func New(corpus Corpus, opts ...Option) *Engine {
	e := &Engine{
		corpus:   corpus,
		detector: connect.NewDetector(),
		seq:      encode.NewSequenceTable(),
		now:      time.Now,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit validates and scores one submission against the current corpus,
// persists the extended corpus, and returns the assembled record. The error
// is a *model.ValidationError or a *model.CorpusError.
func (e *Engine) Submit(sub model.Submission) (*model.Record, error) {
	records, err := e.corpus.Load()
	if err != nil {
		return nil, err
	}
	e.seq.Seed(records)

	record, err := e.Assess(sub, records)
	if err != nil {
		return nil, err
	}

	if err := e.corpus.Replace(append(records, *record)); err != nil {
		return nil, err
	}

	e.log.Infow("record created",
		"id", record.ID,
		"routing", record.RoutingDecision,
		"priority", record.Priority,
	)
	return record, nil
}

// SubmitAll scores a batch of submissions in parallel against one corpus
// snapshot and persists all successful records in a single atomic replace.
// Connections among batch members are not detected; each submission sees
// only the prior corpus, which is acceptable because connections are
// advisory.
func (e *Engine) SubmitAll(ctx context.Context, subs []model.Submission, workers int) ([]worker.Outcome, error) {
	records, err := e.corpus.Load()
	if err != nil {
		return nil, err
	}
	e.seq.Seed(records)

	pool := worker.NewPool(workers)
	outcomes := pool.Run(ctx, e, subs, records)

	extended := records
	created := 0
	for _, outcome := range outcomes {
		if outcome.Err == nil && outcome.Record != nil {
			extended = append(extended, *outcome.Record)
			created++
		}
	}
	if created > 0 {
		if err := e.corpus.Replace(extended); err != nil {
			return outcomes, err
		}
	}

	e.log.Infow("batch processed", "submitted", len(subs), "created", created)
	return outcomes, nil
}

// Assess scores one submission against a fixed corpus snapshot without
// persisting anything. It implements worker.Assessor.
func (e *Engine) Assess(sub model.Submission, corpus []model.Record) (*model.Record, error) {
	if verr := sub.Validate(); verr != nil {
		return nil, verr
	}

	createdAt := e.now().UTC().Format(model.TimeFormat)
	date := createdAt[:10]

	// The four text scorers are independent; run them in parallel.
	var (
		wg           sync.WaitGroup
		coherence    model.CoherenceAssessment
		evidence     model.EvidenceAssessment
		originality  model.OriginalityAssessment
		significance model.SignificanceAssessment
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		coherence = assess.Coherence(sub.Title, sub.Abstract, sub.Findings)
	}()
	go func() {
		defer wg.Done()
		evidence = assess.Evidence(sub.Title, sub.Abstract, sub.Findings, sub.Category, sub.Methodology)
	}()
	go func() {
		defer wg.Done()
		originality = assess.Originality(sub.Title, sub.Abstract, sub.Findings, sub.Category)
	}()
	go func() {
		defer wg.Done()
		significance = assess.Significance(sub.Title, sub.Abstract)
	}()
	wg.Wait()

	detection := e.detector.Detect(sub, corpus)
	linkage := assess.Linkage(detection)

	outcome := route.Route(route.Input{
		Coherence:    coherence,
		Evidence:     evidence,
		Originality:  originality,
		Significance: significance,
		Linkage:      linkage,
		Category:     sub.Category,
		Status:       model.StatusDraft,
	})

	seq := e.seq.Next(date, sub.Category)

	source := sub.Source
	if source == "" {
		source = "manual"
	}

	record := &model.Record{
		ID:       encode.RecordID(sub.Title, string(sub.Category), createdAt),
		Title:    sub.Title,
		Category: sub.Category,
		Abstract: sub.Abstract,
		Findings: sub.Findings,

		Coherence:    coherence,
		Evidence:     evidence,
		Originality:  originality,
		Significance: significance,
		Linkage:      linkage,

		RoutingDecision: outcome.Decision,
		Priority:        outcome.Priority,
		Justification:   outcome.Justification,

		Glyph:        encode.Glyph(sub.Title),
		ChronoMarker: encode.Marker(date, sub.Category, seq),

		Status:      model.StatusDraft,
		CreatedAt:   createdAt,
		Tags:        sub.Tags,
		Source:      source,
		Methodology: sub.Methodology,
	}
	record.VSE = encode.VSE(sub.Category, significance, outcome.Priority, sub.Tags)

	return record, nil
}

// UpdateStatus moves a record through its lifecycle. Only legal transitions
// are applied; everything else is rejected.
func (e *Engine) UpdateStatus(id string, next model.Status) (*model.Record, error) {
	records, err := e.corpus.Load()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		if !records[i].Status.CanTransition(next) {
			return nil, eris.Errorf("illegal status transition %s → %s", records[i].Status, next)
		}
		records[i].Status = next
		if err := e.corpus.Replace(records); err != nil {
			return nil, err
		}
		return &records[i], nil
	}
	return nil, eris.Errorf("record %s not found", id)
}

// AddTags appends tags to a record, skipping duplicates. Tags and status are
// the only mutable fields on a persisted record.
func (e *Engine) AddTags(id string, tags []string) (*model.Record, error) {
	records, err := e.corpus.Load()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}
		existing := map[string]bool{}
		for _, tag := range records[i].Tags {
			existing[tag] = true
		}
		for _, tag := range tags {
			if !existing[tag] {
				records[i].Tags = append(records[i].Tags, tag)
				existing[tag] = true
			}
		}
		if err := e.corpus.Replace(records); err != nil {
			return nil, err
		}
		return &records[i], nil
	}
	return nil, eris.Errorf("record %s not found", id)
}
