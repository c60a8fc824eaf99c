/*
Copyright 2026 The OSIRIS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package manager runs the long-lived parts of a process and waits for them.
package manager

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Interface interface {
	// Add runs f in its own goroutine under name. f must return once ctx is done.
	Add(ctx context.Context, name string, f func(context.Context))

	// Wait blocks until every added function has returned.
	Wait()

	// WaitWithTimeout is Wait bounded by timeout.
	WaitWithTimeout(timeout time.Duration) error
}

type Manager struct {
	logger *zap.Logger
	wg     sync.WaitGroup
}

func New(logger *zap.Logger) *Manager {
	return &Manager{logger: logger.Named("manager")}
}

func (m *Manager) Add(ctx context.Context, name string, f func(context.Context)) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		start := time.Now()
		m.logger.Debug("starting", zap.String("component", name))
		f(ctx)
		m.logger.Info("stopped", zap.String("component", name), zap.Duration("uptime", time.Since(start)))
	}()
}

func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) WaitWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
