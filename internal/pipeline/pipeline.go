package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	"github.com/smetj/ketchup/internal/config"
	"github.com/smetj/ketchup/internal/model"
	"github.com/smetj/ketchup/internal/slack"
)

// Searcher is the part of the Slack client the pipeline depends on.
// Tests substitute a fake serving canned matches.
type Searcher interface {
	Search(ctx context.Context, query string, fn func(slack.Match) error) error
}

// Pipeline turns search definitions into result rows.
type Pipeline struct {
	searcher Searcher
	logger   *slog.Logger
	dump     io.Writer
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithDump writes every raw match verbatim to w before extraction, for
// operators tuning a field path expression. Diagnostic only; the dump never
// affects returned rows.
func WithDump(w io.Writer) Option {
	return func(p *Pipeline) {
		p.dump = w
	}
}

// WithClock overrides the time source used for the after: date. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline fetching matches through searcher.
func New(searcher Searcher, opts ...Option) *Pipeline {
	p := &Pipeline{
		searcher: searcher,
		logger:   slog.Default(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes every enabled definition in config order and returns the
// concatenated rows. Any fetch or field-extraction failure aborts the whole
// run; there is no partial output.
func (p *Pipeline) Run(ctx context.Context, defs []config.SearchDefinition) ([]model.Row, error) {
	var rows []model.Row
	for _, def := range defs {
		if !def.Enable {
			p.logger.Debug("skipping disabled search", "name", def.Name)
			continue
		}

		defRows, err := p.runDefinition(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", def.Name, err)
		}
		rows = append(rows, defRows...)
	}
	return rows, nil
}

// runDefinition fetches and shapes the matches for one definition.
func (p *Pipeline) runDefinition(ctx context.Context, def config.SearchDefinition) ([]model.Row, error) {
	// Config validation already checked these compile; recompiling here
	// keeps the pipeline usable with definitions built in code.
	filter, err := regexp.Compile(def.RegexFilter)
	if err != nil {
		return nil, fmt.Errorf("compile regex_filter: %w", err)
	}
	var substring *regexp.Regexp
	if def.RegexSubstring != nil {
		if substring, err = regexp.Compile(*def.RegexSubstring); err != nil {
			return nil, fmt.Errorf("compile regex_substring: %w", err)
		}
	}

	afterDate := p.now().UTC().AddDate(0, 0, -def.DaysBack).Format(model.DateLayout)
	query := slack.BuildQuery(def.Query, def.Channels, afterDate, def.IgnoreUsers, def.DoneMarker)
	p.logger.Debug("running search", "name", def.Name, "query", query)

	var rows []model.Row
	err = p.searcher.Search(ctx, query, func(m slack.Match) error {
		if p.dump != nil {
			fmt.Fprintln(p.dump, string(m))
		}

		rec, err := normalize(m, def.Field)
		if err != nil {
			return err
		}
		if !filter.MatchString(rec.Field) {
			// Expected miss, dropped silently.
			return nil
		}

		message := rec.Field
		if substring != nil {
			message = extractSubstring(substring, message)
		}
		message = collapseBlankLines(message)

		rows = append(rows, model.Row{
			Date:      rec.Date,
			Channel:   rec.Channel,
			User:      rec.User,
			Message:   message,
			Permalink: rec.Permalink,
			Type:      def.Name,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Debug("search finished", "name", def.Name, "rows", len(rows))
	return rows, nil
}

// normalize extracts the record fields from a raw match. A field path that
// resolves to nothing fails the record, and with it the run.
func normalize(m slack.Match, fieldPath string) (model.Record, error) {
	ts, err := m.Timestamp()
	if err != nil {
		return model.Record{}, err
	}
	field, err := m.Field(fieldPath)
	if err != nil {
		return model.Record{}, err
	}
	return model.Record{
		Date:      ts.Format(model.DateLayout),
		Channel:   m.ChannelName(),
		User:      m.Username(),
		Permalink: m.Permalink(),
		Field:     field,
	}, nil
}
