package database

import (
	"context"

	"go.uber.org/zap"
)

// Processor runs queries through whichever adapter it is given. It does not
// own the adapter; the adapter's lifetime is managed by its creator.
type Processor struct {
	adapter Adapter
	logger  *zap.Logger
}

// NewProcessor creates a processor over adapter.
func NewProcessor(adapter Adapter) *Processor {
	return &Processor{
		adapter: adapter,
		logger:  zap.NewNop(),
	}
}

// WithLogger sets the diagnostic logger and returns the processor.
func (p *Processor) WithLogger(logger *zap.Logger) *Processor {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// ProcessData connects and then executes query, in that order,
// unconditionally. No retries, no connection reuse across calls.
func (p *Processor) ProcessData(ctx context.Context, query string) error {
	if err := p.adapter.Connect(ctx); err != nil {
		return err
	}
	if err := p.adapter.ExecuteQuery(ctx, query); err != nil {
		return err
	}

	p.logger.Debug("processed query", zap.String("query", query))
	return nil
}
