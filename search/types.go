package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lazybeaver/atm"
)

// DefaultProgressEvery is how many machines pass between progress logs.
const DefaultProgressEvery = 1_000_000

// BudgetLimit is the largest step budget Limited accepts. Step counts
// index the halting histogram, so they must fit an int with room to spare.
const BudgetLimit = math.MaxInt / 2

// ctxCheckEvery is how many machines pass between context checks.
const ctxCheckEvery = 4096

var (
	// ErrInvalidStates is returned for a state count of 0 or above atm.MaxStates.
	ErrInvalidStates = atm.ErrInvalidStates

	// ErrInvalidBudget is returned when a step budget is 0 or above BudgetLimit.
	ErrInvalidBudget = errors.New("search: step budget out of range")

	// ErrBudgetExhausted is returned by LazyBeaver when escalation passes the
	// configured maximum budget or would overflow.
	ErrBudgetExhausted = errors.New("search: budget exhausted before LB(n) was found")
)

// Stats counts the machines a search examined.
// Every examined machine is exactly one of Halted, NeverHalts, StillRunning
// or Refined (split into children).
type Stats struct {
	Examined     uint64 `json:"examined" yaml:"examined"`
	Halted       uint64 `json:"halted" yaml:"halted"`
	NeverHalts   uint64 `json:"never_halts" yaml:"never_halts"`
	StillRunning uint64 `json:"still_running" yaml:"still_running"`
	Refined      uint64 `json:"refined" yaml:"refined"`
}

// Result is the outcome of one bounded enumeration.
type Result struct {
	// States is n.
	States int

	// Budget is the step budget the enumeration ran with.
	Budget uint64

	// Stats counts examined machines by outcome.
	Stats Stats

	// Least is the smallest step count in [1, Budget] no machine halted at.
	// Valid only when Found.
	Least uint64

	// Found is false when every count in [1, Budget] was witnessed, i.e. the
	// budget was too small to bound LB(n).
	Found bool

	// Halts[k-1] is how many enumerated machines halted at exactly step k.
	// It ends at the latest halting step seen; later steps had no halts.
	Halts []uint64
}

// Witnessed reports whether some machine halted at exactly step k.
func (r Result) Witnessed(k uint64) bool {
	return k >= 1 && k <= uint64(len(r.Halts)) && r.Halts[k-1] > 0
}

// Recorder receives one call per finished Limited run.
type Recorder interface {
	RecordRun(res Result, elapsed time.Duration)
}

// Option configures Limited and LazyBeaver.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx cancels a long enumeration; checked every few thousand machines.
	Ctx context.Context

	// NeverHaltsCheck runs the stepper's CannotHalt proof before simulating
	// each machine. Default true.
	NeverHaltsCheck bool

	// OnHalt, if non-nil, is called with every machine that halts and its
	// halting step.
	OnHalt func(m atm.Machine, step uint64)

	// Logger receives progress at debug level. Defaults to a discard logger.
	Logger *slog.Logger

	// ProgressEvery is the number of examined machines between progress logs.
	ProgressEvery uint64

	// Recorder, if non-nil, is told about every finished Limited run.
	Recorder Recorder

	// InitialBudget is the first budget LazyBeaver tries. Default 1.
	InitialBudget uint64

	// MaxBudget stops LazyBeaver escalation; 0 means unbounded.
	MaxBudget uint64

	// OnBudget, if non-nil, is called by LazyBeaver with each result whose
	// budget was too small.
	OnBudget func(res Result)
}

// DefaultOptions returns Options with:
//   - Background context
//   - the never-halts check enabled
//   - no hooks, a discard logger, no recorder
//   - escalation from a budget of 1 with no upper bound
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		NeverHaltsCheck: true,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		ProgressEvery:   DefaultProgressEvery,
		InitialBudget:   1,
	}
}

// WithContext sets the context used for cancellation.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNeverHaltsCheck enables or disables the CannotHalt pre-check.
func WithNeverHaltsCheck(enabled bool) Option {
	return func(o *Options) {
		o.NeverHaltsCheck = enabled
	}
}

// WithOnHalt installs a hook called for every halting machine.
func WithOnHalt(fn func(m atm.Machine, step uint64)) Option {
	return func(o *Options) {
		o.OnHalt = fn
	}
}

// WithLogger sets the progress logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery sets the progress log interval; 0 disables progress logs.
func WithProgressEvery(n uint64) Option {
	return func(o *Options) {
		o.ProgressEvery = n
	}
}

// WithRecorder installs a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithInitialBudget sets the first budget LazyBeaver tries.
// A budget of 0 is ignored.
func WithInitialBudget(b uint64) Option {
	return func(o *Options) {
		if b > 0 {
			o.InitialBudget = b
		}
	}
}

// WithMaxBudget caps LazyBeaver escalation; 0 removes the cap.
func WithMaxBudget(b uint64) Option {
	return func(o *Options) {
		o.MaxBudget = b
	}
}

// WithOnBudget installs a hook called for each insufficient budget.
func WithOnBudget(fn func(res Result)) Option {
	return func(o *Options) {
		o.OnBudget = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
