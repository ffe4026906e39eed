package directory

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/undeniable-app/undeniable/adapters/log"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/result"
	"github.com/undeniable-app/undeniable/utils/constant"
)

// Status is the lifecycle state of a Loader.
type Status int

const (
	StatusPending Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Loader loads a Directory once from a Source. A failed or abandoned load is
// final; there is no retry.
type Loader struct {
	source Source
	log    *log.Log

	once sync.Once
	done chan struct{}

	mu     sync.RWMutex
	status Status
	dir    *Directory
	report *Report
	err    blame.Blame
}

// NewLoader creates a pending Loader.
func NewLoader(source Source, logger *log.Log) *Loader {
	if logger == nil {
		logger = log.NewBasicLogger(false)
	}
	return &Loader{
		source: source,
		log:    logger,
		done:   make(chan struct{}),
	}
}

// Start begins loading in the background. Calls after the first are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		go l.run(ctx)
	})
}

// Load runs the load on the calling goroutine, or waits for one already
// started, and returns its outcome.
func (l *Loader) Load(ctx context.Context) result.Result[Directory] {
	l.once.Do(func() {
		l.run(ctx)
	})
	if err := l.Wait(ctx); err != nil {
		return result.NewFailure[Directory](blame.DirectoryLoadError(l.source.Name(), err))
	}
	return l.Directory()
}

// Wait blocks until the load settles or ctx is done.
func (l *Loader) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed once the load settles.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

func (l *Loader) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Report returns the row report of a completed parse, or nil.
func (l *Loader) Report() *Report {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.report
}

// Directory returns the loaded directory, DirectoryPending while the load
// runs, or the load error.
func (l *Loader) Directory() result.Result[Directory] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	switch l.status {
	case StatusReady:
		return result.NewSuccess(l.dir)
	case StatusFailed:
		return result.NewFailure[Directory](l.err)
	default:
		return result.NewFailure[Directory](blame.DirectoryPending())
	}
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)
	start := time.Now()
	name := l.source.Name()

	dir, report, err := l.fetchAndParse(ctx)
	// A load that outlived its context is discarded whole.
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if report != nil {
		report.Source = name
		l.report = report
	}
	if err != nil {
		l.status = StatusFailed
		l.err = blame.DirectoryLoadError(name, err)
		l.log.Error(constant.DirectoryFailed, log.String("source", name), log.Err(err))
		return
	}
	l.status = StatusReady
	l.dir = dir
	l.log.Info(constant.DirectoryLoaded,
		log.String("source", name),
		log.Int("companies", dir.Len()),
		log.Int("dropped", len(report.Dropped)),
		log.Duration("elapsed", time.Since(start)),
	)
}

func (l *Loader) fetchAndParse(ctx context.Context) (*Directory, *Report, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return Parse(bytes.NewReader(data), l.log)
}

// LoadFrom is a synchronous convenience around NewLoader and Load.
func LoadFrom(ctx context.Context, source Source, logger *log.Log) (*Directory, *Report, error) {
	loader := NewLoader(source, logger)
	res := loader.Load(ctx)
	if res.IsError() {
		return nil, loader.Report(), res.Error()
	}
	return res.ToValue(), loader.Report(), nil
}
