package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"formup/internal/application/port/input"
	"formup/internal/application/port/output"
	"formup/internal/domain/entity"
)

var _ input.MessageReceiver = (*Dispatcher)(nil)

var ErrNoReceiver = errors.New("no receiver for message type")

// Dispatcher routes messages to the handler registered for their type.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[entity.MessageType]input.MessageHandler
	logger   output.LoggerPort
}

func NewDispatcher(logger output.LoggerPort) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[entity.MessageType]input.MessageHandler),
		logger:   logger,
	}
}

func (d *Dispatcher) Register(h input.MessageHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[h.Type()] = h
}

func (d *Dispatcher) Get(t entity.MessageType) (input.MessageHandler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.handlers[t]
	return h, ok
}

func (d *Dispatcher) Types() []entity.MessageType {
	d.mu.RLock()
	defer d.mu.RUnlock()

	result := make([]entity.MessageType, 0, len(d.handlers))
	for t := range d.handlers {
		result = append(result, t)
	}
	slices.Sort(result)
	return result
}

// Handle forwards msg to its handler. Unknown types are ignored and never
// answered.
func (d *Dispatcher) Handle(ctx context.Context, msg entity.Message, respond func(entity.Response)) bool {
	h, ok := d.Get(msg.Type)
	if !ok {
		d.logger.Debug("Ignoring message", "type", msg.Type)
		return false
	}

	d.logger.Debug("Dispatching message", "type", msg.Type)
	return h.Handle(ctx, msg, respond)
}
