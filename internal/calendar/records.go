package calendar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/when/internal/dates"
)

type rawRecord struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Done  bool   `yaml:"done"`
}

// Loader reads record files. Dates may be YYYY-MM-DD, RFC3339 timestamps or
// any phrase the resolver recognizes ("last friday").
type Loader struct {
	Resolver *dates.Resolver
	Location *time.Location
}

// LoadFile reads records from a YAML file.
func (l Loader) LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records %s: %w", path, err)
	}
	defer f.Close()

	records, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// LoadFiles reads several record files concurrently and returns their records
// concatenated in path order. The first error cancels the remaining reads.
func (l Loader) LoadFiles(ctx context.Context, paths []string) ([]Record, error) {
	perFile := make([][]Record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := l.LoadFile(path)
			if err != nil {
				return err
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Record
	for _, records := range perFile {
		all = append(all, records...)
	}
	return all, nil
}

// Load reads a YAML list of records.
func (l Loader) Load(r io.Reader) ([]Record, error) {
	var raw []rawRecord
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for i, rr := range raw {
		date, err := l.parseDate(rr.Date)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", recordLabel(i, rr), err)
		}
		records = append(records, Record{
			ID:    rr.ID,
			Title: rr.Title,
			Date:  date,
			Done:  rr.Done,
		})
	}
	return records, nil
}

func (l Loader) parseDate(value string) (time.Time, error) {
	loc := l.Location
	if loc == nil {
		loc = time.UTC
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if dates.IsValidDate(trimmed) {
		return dates.ParseDate(trimmed, loc)
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t.In(loc), nil
	}

	resolver := l.Resolver
	if resolver == nil {
		resolver = dates.NewResolver(dates.WithClock(func() time.Time { return time.Now().In(loc) }))
	}
	res, ok := resolver.ResolvePhrase(trimmed)
	if !ok {
		return time.Time{}, fmt.Errorf("unrecognized date %q", value)
	}
	return res.Date, nil
}

func recordLabel(i int, rr rawRecord) string {
	if rr.ID != "" {
		return fmt.Sprintf("%q", rr.ID)
	}
	return fmt.Sprintf("#%d", i+1)
}
