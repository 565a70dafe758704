// Package hook is the synchronous lifecycle hook dispatcher. Storefront
// services fire named hook points during request processing; enabled addon
// handlers attach callbacks at boot. The async counterpart (order completed,
// product viewed, low stock) lives on the watermill bus.
package hook

import (
	"context"
	"sync"
)

// Hook point names.
const (
	CartBeforeTotals = "cart.before_totals"
	CheckoutValidate = "checkout.validate"
)

// Func is one attached callback. Returning an error aborts the remaining
// callbacks for that invocation and propagates to the firing service.
type Func func(ctx context.Context, payload any) error

type Dispatcher struct {
	mu    sync.RWMutex
	hooks map[string][]Func
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		hooks: make(map[string][]Func),
	}
}

// Add attaches fn to the named hook point. Callback order across addons is
// unspecified; handlers must not rely on it.
func (d *Dispatcher) Add(name string, fn Func) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hooks[name] = append(d.hooks[name], fn)
}

// Do fires the named hook point with payload.
func (d *Dispatcher) Do(ctx context.Context, name string, payload any) error {
	d.mu.RLock()
	callbacks := d.hooks[name]
	d.mu.RUnlock()

	for _, fn := range callbacks {
		if err := fn(ctx, payload); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of callbacks attached to the named hook point.
func (d *Dispatcher) Count(name string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hooks[name])
}
