package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrStopped is returned when the scan loop was ended by an explicit Stop
// before any code was decoded.
var ErrStopped = errors.New("scan stopped")

// Frame is one sampled camera or video frame.
type Frame []byte

// FrameSource produces frames from a camera or video stream. Close
// releases the underlying device and must be safe to call once per scan.
type FrameSource interface {
	NextFrame(ctx context.Context) (Frame, error)
	Close() error
}

// Decoder turns a frame into a code string. ok is false when the frame
// holds no readable code.
type Decoder interface {
	Decode(frame Frame) (code string, ok bool)
}

// Scanner runs the asynchronous polling loop that samples frames at a
// fixed cadence until a code is decoded. The frame source is released on
// every exit path: successful decode, error, cancellation or stop. A scan
// that ends before a decode has no side effects anywhere.
type Scanner struct {
	source   FrameSource
	decoder  Decoder
	interval time.Duration
	logger   *zap.Logger
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a scanner polling at the given interval.
func New(source FrameSource, decoder Decoder, interval time.Duration, logger *zap.Logger) *Scanner {
	return &Scanner{
		source:   source,
		decoder:  decoder,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Scan polls frames until one decodes, the context is cancelled, or Stop
// is called. The decoded code is handed back to the caller, who feeds it
// to the attendance flow.
func (s *Scanner) Scan(ctx context.Context) (string, error) {
	defer func() {
		if err := s.source.Close(); err != nil {
			s.logger.Warn("failed to release frame source", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scan cancelled")
			return "", ctx.Err()
		case <-s.stop:
			s.logger.Debug("scan stopped")
			return "", ErrStopped
		case <-ticker.C:
			frame, err := s.source.NextFrame(ctx)
			if err != nil {
				return "", err
			}
			if code, ok := s.decoder.Decode(frame); ok {
				s.logger.Info("code decoded", zap.Int("code_length", len(code)))
				return code, nil
			}
		}
	}
}

// Stop ends the scan loop from another goroutine, e.g. on navigation away
// from the scanning screen. Safe to call more than once.
func (s *Scanner) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
