package storage

import (
	"time"
)

// Recorder receives one observation per backend call.
type Recorder interface {
	ObserveStorage(engine, op string, elapsed time.Duration, err error)
}

type Option func(*Provider)

func WithRecorder(r Recorder) Option {
	return func(p *Provider) {
		if r != nil {
			p.recorder = r
		}
	}
}

// Provider owns a Backend for the lifetime of the process and hands out
// sessions. It is safe for concurrent use.
type Provider struct {
	backend  Backend
	recorder Recorder
}

func NewProvider(backend Backend, opts ...Option) *Provider {
	p := &Provider{backend: backend}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session opens a unit of work. Close it when the unit ends.
func (p *Provider) Session() Store {
	return newSession(p)
}

func (p *Provider) Engine() string {
	return p.backend.Name()
}

func (p *Provider) Close() error {
	return p.backend.Close()
}

func (p *Provider) observe(op string, start time.Time, err error) {
	if p.recorder == nil {
		return
	}
	p.recorder.ObserveStorage(p.backend.Name(), op, time.Since(start), err)
}
