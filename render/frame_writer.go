package render

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/glife/model"
)

// FrameWriter writes one PPM image per generation. Boards are immutable, so frames are
// painted and written on a bounded set of goroutines while the simulation moves on.
// The first write error stops further writes and is reported by Observe and Close.
type FrameWriter struct {
	dir     string
	style   Style
	pool    *BufferPool
	logger  *zap.Logger
	eg      *errgroup.Group
	ctx     context.Context
	written atomic.Int64
}

// NewFrameWriter creates a writer saving frames under dir
func NewFrameWriter(ctx context.Context, dir string, style Style, logger *zap.Logger) *FrameWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	return &FrameWriter{
		dir:    dir,
		style:  style,
		pool:   NewBufferPool(),
		logger: logger,
		eg:     eg,
		ctx:    egCtx,
	}
}

// Observe queues the board for writing. It blocks while all writers are busy.
func (w *FrameWriter) Observe(generation int, b *model.Board) error {
	if w.ctx.Err() != nil {
		if err := w.eg.Wait(); err != nil {
			return err
		}
		return nil
	}

	w.eg.Go(func() error {
		if w.ctx.Err() != nil {
			return nil
		}
		canvas := w.pool.Get(b.Cols(), b.Rows(), w.style.BlockSize)
		defer w.pool.Put(canvas)

		w.style.Paint(canvas, b)
		name := FrameName(generation)
		if err := WritePPM(w.dir, name, canvas); err != nil {
			return errors.Wrapf(err, "[FrameWriter] generation %d", generation)
		}
		w.written.Add(1)
		w.logger.Debug("frame written", zap.String("file", name), zap.Int("generation", generation))
		return nil
	})
	return nil
}

// Close waits for queued frames and returns the first write error
func (w *FrameWriter) Close() error {
	return w.eg.Wait()
}

// Written returns the number of frames saved so far
func (w *FrameWriter) Written() int64 {
	return w.written.Load()
}
