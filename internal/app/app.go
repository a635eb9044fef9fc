package app

import (
	"math/rand"

	"go.ytsaurus.tech/library/go/collection/seq"
	"go.ytsaurus.tech/library/go/collection/slices"
	"go.ytsaurus.tech/library/go/core/log"
	"go.ytsaurus.tech/library/go/core/xerrors"
)

// App runs seqtool commands over lists of decoded YSON values.
type App struct {
	l      log.Logger
	config Config
}

func NewApp(l log.Logger, config Config) *App {
	return &App{l: l, config: config}
}

func (a *App) Config() Config {
	return a.config
}

// Range selects [Start, End) of a list. Negative End means the end of the list.
type Range struct {
	Start int
	End   int
}

func (r Range) resolve(n int) (int, int) {
	if r.End < 0 {
		return r.Start, n
	}
	return r.Start, r.End
}

func (a *App) view(values []any, r Range) (*seq.View[any], error) {
	start, end := r.resolve(len(values))
	v, err := seq.Slice[any](seq.Array[any](values), start, end)
	if err != nil {
		a.l.Warn("invalid range", log.Int("start", start), log.Int("end", end), log.Int("length", len(values)))
		return nil, err
	}
	return v, nil
}

// SortOptions configure App.Sort.
type SortOptions struct {
	Key  string
	Desc bool
}

// Sort sorts the range of values in place by the key named in opts.
func (a *App) Sort(values []any, r Range, opts SortOptions) error {
	keyOf, err := KeyFunc(opts.Key)
	if err != nil {
		return err
	}

	v, err := a.view(values, r)
	if err != nil {
		return err
	}

	a.l.Debug("sorting",
		log.Int("length", v.Len()),
		log.String("key", opts.Key),
		log.Bool("desc", opts.Desc))
	return seq.SortRangeBy[any, any](v, 0, v.Len(), keyOf, ValueComparator(opts.Desc))
}

func (a *App) source() rand.Source {
	if a.config.Seed == nil {
		return nil
	}
	return rand.NewSource(*a.config.Seed)
}

// Shuffle shuffles the range of values in place.
func (a *App) Shuffle(values []any, r Range) error {
	v, err := a.view(values, r)
	if err != nil {
		return err
	}
	a.l.Debug("shuffling", log.Int("length", v.Len()), log.Bool("seeded", a.config.Seed != nil))
	return v.Shuffle(a.source())
}

// Reverse reverses the range of values in place.
func (a *App) Reverse(values []any, r Range) error {
	v, err := a.view(values, r)
	if err != nil {
		return err
	}
	return v.Reverse()
}

// Slice returns a copy of the range of values.
func (a *App) Slice(values []any, r Range) ([]any, error) {
	v, err := a.view(values, r)
	if err != nil {
		return nil, err
	}
	return v.Values()
}

// Chunk splits the range of values into lists of size elements.
func (a *App) Chunk(values []any, r Range, size int) ([][]any, error) {
	if size <= 0 {
		return nil, xerrors.Errorf("chunk size must be positive, got %d", size)
	}
	part, err := a.Slice(values, r)
	if err != nil {
		return nil, err
	}
	chunks := slices.Chunk(part, size)
	a.l.Debug("chunked", log.Int("length", len(part)), log.Int("chunks", len(chunks)))
	return chunks, nil
}
