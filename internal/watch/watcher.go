// Package watch re-parses a notation file whenever it changes on disk.
package watch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"

	"github.com/cbegin/stan-go/internal/notation"
)

// DefaultDebounce is how long writes must settle before a re-parse.
const DefaultDebounce = 100 * time.Millisecond

const resultBuffer = 16

// Parser is the subset of *lilypond.Parser the watcher needs.
type Parser interface {
	Parse(input string) (notation.Column, error)
}

// Result is the outcome of parsing the file once.
type Result struct {
	Path   string
	Column notation.Column
	Err    error
	At     time.Time
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the logger used for dropped results and watch errors.
func WithLogger(l *log.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher monitors one file. The containing directory is watched so that
// editors which save by rename are still seen.
type Watcher struct {
	Path    string
	Results <-chan Result // Closed by Stop

	results  chan Result
	done     chan struct{}
	watcher  *fsnotify.Watcher
	parser   Parser
	delay    time.Duration
	logger   *log.Logger
	mu       sync.Mutex
	started  bool
	stopped  bool
	stopOnce sync.Once
}

func New(path string, p Parser, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan Result, resultBuffer)
	w := &Watcher{
		Path:    abs,
		Results: ch,
		results: ch,
		done:    make(chan struct{}),
		watcher: fw,
		parser:  p,
		delay:   DefaultDebounce,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start parses the file once and then begins watching for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("watching %s: %w", w.Path, err)
	}
	w.mu.Lock()
	w.started = true
	w.mu.Unlock()
	w.reparse()
	go w.loop()
	return nil
}

// Stop closes the watcher and the Results channel.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		w.mu.Lock()
		started := w.started
		w.mu.Unlock()
		if started {
			<-w.done
		}
		w.mu.Lock()
		w.stopped = true
		close(w.results)
		w.mu.Unlock()
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	debounced := debounce.New(w.delay)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				debounced(w.reparse)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Printf("watch %s: %v", w.Path, err)
		}
	}
}

func (w *Watcher) reparse() {
	res := Result{Path: w.Path, At: time.Now()}
	data, err := os.ReadFile(w.Path)
	if err != nil {
		res.Err = err
	} else {
		res.Column, res.Err = w.parser.Parse(string(data))
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	select {
	case w.results <- res:
	default:
		w.logger.Printf("watch %s: result dropped, reader is behind", w.Path)
	}
}
