package bootstrap

import (
	"sync"

	"go.uber.org/zap"
)

// Closers collects resources opened by the container so they can be
// released in reverse order on shutdown.
type Closers struct {
	mu    sync.Mutex
	names []string
	fns   []func() error
}

func (c *Closers) Add(name string, fn func() error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
	c.fns = append(c.fns, fn)
}

// CloseAll runs every registered closer, newest first.
func (c *Closers) CloseAll(log *zap.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.fns) - 1; i >= 0; i-- {
		if err := c.fns[i](); err != nil {
			log.Warn("close failed", zap.String("resource", c.names[i]), zap.Error(err))
		}
	}
	c.names, c.fns = nil, nil
}
