package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/array"
	"github.com/npillmayer/containers/sstring"
)

// Some constants for file size thresholds
const (
	oneKb = 1024
	tenKb = 10240
	oneMb = 1048576
)

const maxLineLength = oneMb

// ErrClosed stops loading into a Buffer which has been closed.
var ErrClosed = errors.New("textfile: buffer closed")

// Config controls loading.
type Config struct {
	// BatchSize is the number of lines appended to the buffer (and
	// announced to subscribers) at once. 0 selects a default depending on
	// the file size.
	BatchSize int
}

func (cfg Config) normalized(size int64) Config {
	if cfg.BatchSize > 0 {
		return cfg
	}
	switch {
	case size < oneKb:
		cfg.BatchSize = 16
	case size < tenKb:
		cfg.BatchSize = 64
	case size < oneMb:
		cfg.BatchSize = 256
	default:
		cfg.BatchSize = 1024
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.BatchSize < 0 {
		return fmt.Errorf("%w: negative batch size %d", containers.ErrIllegalArguments, cfg.BatchSize)
	}
	return nil
}

// Progress is broadcast to subscribers whenever a batch of lines has been
// loaded, and once more when loading has finished.
type Progress struct {
	Lines int   // number of lines loaded so far
	Done  bool  // loading has finished
	Err   error // reason loading has stopped early, if Done
}

// Buffer holds the lines of a text file. All methods are safe for
// concurrent use.
type Buffer struct {
	name     string
	mu       sync.RWMutex
	lines    array.Array[sstring.String]
	cast     *caster.Caster // broadcaster for async file loading
	done     chan struct{}
	finished bool
	closed   bool
	final    Progress
}

// Load opens a file, which must be a regular text file, and starts reading
// its lines into a Buffer. The Buffer can be used right away; Wait blocks
// until all lines are loaded. Cancelling ctx stops loading.
func Load(ctx context.Context, name string, cfg *Config) (*Buffer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	file, info, err := openFile(name)
	if err != nil {
		return nil, err
	}
	b := &Buffer{
		name: name,
		cast: caster.New(nil), // we will broadcast messages when batches are loaded
		done: make(chan struct{}),
	}
	c := cfg.normalized(info.Size())
	tracer().Infof("textfile: loading %s (%d bytes) in batches of %d lines", name, info.Size(), c.BatchSize)
	go b.load(ctx, file, c.BatchSize)
	return b, nil
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, os.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%w: %s is not a regular file", containers.ErrIllegalArguments, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, nil, err
	}
	return file, fi, nil
}

// load is the loader goroutine.
func (b *Buffer) load(ctx context.Context, file *os.File, batchSize int) {
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	batch := make([]string, 0, batchSize)
	var err error
	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		if len(batch) < batchSize {
			continue
		}
		if err = b.flush(ctx, batch); err != nil {
			break
		}
		batch = batch[:0]
	}
	if err == nil {
		err = scanner.Err()
	}
	if err == nil {
		err = b.flush(ctx, batch)
	}
	if err != nil {
		tracer().Errorf("textfile: loading %s stopped: %v", b.name, err)
	}
	b.finish(err)
}

// flush appends a batch of lines to the buffer and announces it.
func (b *Buffer) flush(ctx context.Context, batch []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(batch) == 0 {
		return nil
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	for _, line := range batch {
		var s sstring.String
		if err := s.AssignString(line); err != nil {
			b.mu.Unlock()
			return err
		}
		if err := b.lines.Add(s); err != nil {
			s.Destroy()
			b.mu.Unlock()
			return err
		}
	}
	n := b.lines.Num()
	b.mu.Unlock()
	tracer().Debugf("textfile: %s: %d lines loaded", b.name, n)
	b.cast.Pub(Progress{Lines: n})
	return nil
}

// finish publishes the final progress message and closes the broadcast.
// Subscribers registered before finished is set receive the final message
// through the broadcast, later ones directly from Subscribe.
func (b *Buffer) finish(err error) {
	b.mu.Lock()
	b.finished = true
	b.final = Progress{Lines: b.lines.Num(), Done: true, Err: err}
	b.mu.Unlock()
	b.cast.Pub(b.final)
	b.cast.Close()
	close(b.done)
	tracer().Infof("textfile: %s: loaded %d lines", b.name, b.final.Lines)
}

// --- Buffer API ------------------------------------------------------------

// Wait blocks until loading has finished or ctx is done. It returns the
// error which stopped loading early, if any.
func (b *Buffer) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return b.final.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns a channel of Progress messages. The last message has
// Done set, after which the channel is closed. Subscribers must drain the
// channel, as loading waits for slow subscribers.
func (b *Buffer) Subscribe(ctx context.Context) <-chan Progress {
	out := make(chan Progress, 1)
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.finished {
		out <- b.final
		close(out)
		return out
	}
	sub, ok := b.cast.Sub(ctx, 16)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range sub {
			out <- m.(Progress)
		}
	}()
	return out
}

// Num returns the number of lines loaded so far.
func (b *Buffer) Num() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lines.Num()
}

// Line returns line i, without its line terminator.
func (b *Buffer) Line(i int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= b.lines.Num() {
		return "", fmt.Errorf("%w: line %d of %d", containers.ErrIndexOutOfBounds, i, b.lines.Num())
	}
	return b.lines.At(i).String(), nil
}

// Err returns the error which stopped loading early. It is nil while
// loading is in progress.
func (b *Buffer) Err() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.final.Err
}

// Close drops all lines. Loading still in progress stops with ErrClosed.
func (b *Buffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.lines.Clear()
}
