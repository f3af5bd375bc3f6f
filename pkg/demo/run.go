// Package demo sequences the three pattern components for the demonstration
// binary. It is a separate package so the full run can be exercised in tests
// against an in-memory sink.
package demo

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/patternworks/patterns/pkg/cache"
	"github.com/patternworks/patterns/pkg/config"
	"github.com/patternworks/patterns/pkg/database"
	"github.com/patternworks/patterns/pkg/logging"
	"github.com/patternworks/patterns/pkg/pubsub"
)

// Run executes the demonstration described by cfg, writing acknowledgment
// lines to out. The sequence is fixed: singleton cache, then one processor
// per configured backend, then the blog publish/subscribe round.
func Run(cfg *config.Config, out io.Writer, logger *logging.ColoredLogger) error {
	ctx := context.Background()

	runCache(cfg, out, logger)

	if err := runAdapters(ctx, cfg, out, logger); err != nil {
		return err
	}

	runBlog(cfg, out, logger)

	logger.ComponentInfo(logging.ComponentDemo, "demonstration complete")
	return nil
}

// runCache seeds the process-wide cache and reads entries back through a
// second handle to the same singleton.
func runCache(cfg *config.Config, out io.Writer, logger *logging.ColoredLogger) {
	c := cache.GetInstance().WithLogger(logger.Logger)

	keys := make([]string, 0, len(cfg.Cache.Seed))
	for k := range cfg.Cache.Seed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.Set(k, cfg.Cache.Seed[k])
	}

	// Both handles point at the same instance; reads go through the second.
	reader := cache.GetInstance()
	for _, k := range keys {
		if v, ok := reader.Get(k); ok {
			fmt.Fprintf(out, "cache[%s] = %s\n", k, v)
		}
	}

	if _, err := reader.GetValue(cfg.Cache.Probe); err != nil {
		fmt.Fprintf(out, "cache[%s] is not set\n", cfg.Cache.Probe)
	}

	logger.ComponentDebug(logging.ComponentCache, "cache seeded",
		zap.Int("entries", reader.Len()))
}

// runAdapters runs the configured query through one processor per backend.
func runAdapters(ctx context.Context, cfg *config.Config, out io.Writer, logger *logging.ColoredLogger) error {
	for _, kind := range cfg.Database.Backends {
		adapter, err := database.NewAdapter(database.Kind(kind), out)
		if err != nil {
			return err
		}

		processor := database.NewProcessor(adapter).WithLogger(logger.Logger)
		if err := processor.ProcessData(ctx, cfg.Database.Query); err != nil {
			return err
		}

		logger.ComponentDebug(logging.ComponentDatabase, "backend processed",
			zap.String("backend", kind))
	}
	return nil
}

// runBlog subscribes the configured roster, publishes the articles in order
// and drops the first subscriber after the first article.
func runBlog(cfg *config.Config, out io.Writer, logger *logging.ColoredLogger) {
	publisher := pubsub.NewPublisher(cfg.Blog.Publisher, out).WithLogger(logger.Logger)

	readers := make([]*pubsub.Reader, 0, len(cfg.Blog.Subscribers))
	for _, name := range cfg.Blog.Subscribers {
		r := pubsub.NewReader(name, out)
		readers = append(readers, r)
		publisher.Subscribe(r)
	}

	for i, title := range cfg.Blog.Articles {
		publisher.PublishArticle(title)

		if i == 0 && len(readers) > 0 {
			publisher.Unsubscribe(readers[0])
			logger.ComponentDebug(logging.ComponentPubSub, "subscriber dropped",
				zap.String("subscriber", readers[0].Name()))
		}
	}
}
