/*
Package notify is the registration/notification mailbox between the
segmentation engine and its host: the host registers a completion callback
per element id, and the engine reports "segmentation finished, here are N
units of kind K" through it.

Callback invocation is an isolation boundary: a panicking consumer is
caught and recorded, never propagated into the pipeline.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notify

import (
	"fmt"
	"reflect"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segment/split"
	"github.com/npillmayer/segment/styled"
)

// tracer will return a tracer. We are tracing to 'segment.notify'.
func tracer() tracing.Trace {
	return tracing.Select("segment.notify")
}

// Callback is the completion hand-off to the host: the ordered units a
// segmentation produced, and the kind of segmentation.
type Callback func(units []styled.Node, kind split.UnitKind)

const defaultMaxElements = 100

// Registry holds one active callback per element id. Registering again for
// the same id replaces the previous callback; there is no implicit expiry.
type Registry struct {
	callbacks     map[string]Callback
	maxElements   int
	validate      bool
	stats         Stats
	invoked       int
	totalDuration time.Duration
}

// Option is a configuration directive for Registry construction.
type Option func(r *Registry)

// MaxElements caps the number of distinct element ids the registry accepts.
// Re-registering an existing id is always allowed.
func MaxElements(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxElements = n
		}
	}
}

// Validate switches signature validation during Register on or off.
func Validate(on bool) Option {
	return func(r *Registry) {
		r.validate = on
	}
}

// New creates a Registry, applying options.
func New(opts ...Option) *Registry {
	r := &Registry{
		callbacks:   make(map[string]Callback),
		maxElements: defaultMaxElements,
		validate:    true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores a completion callback for an element id, replacing any
// prior registration. It rejects callbacks that are not callable or (with
// validation enabled) do not accept exactly the two notification
// parameters, and rejects new ids once the registry is full.
func (r *Registry) Register(elementID string, callback interface{}) bool {
	cb, ok := r.adapt(callback)
	if !ok {
		tracer().Infof("notify: rejecting callback for %q: not a two-parameter function", elementID)
		return false
	}
	if _, exists := r.callbacks[elementID]; !exists && len(r.callbacks) >= r.maxElements {
		tracer().Infof("notify: rejecting callback for %q: registry holds %d elements",
			elementID, r.maxElements)
		return false
	}
	r.callbacks[elementID] = cb
	return true
}

// adapt normalizes a callback argument into the Callback type. Functions
// with compatible but differently-typed parameters (e.g. interface{}) are
// wrapped through reflection.
func (r *Registry) adapt(callback interface{}) (Callback, bool) {
	switch cb := callback.(type) {
	case Callback:
		return cb, cb != nil
	case func(units []styled.Node, kind split.UnitKind):
		return Callback(cb), cb != nil
	}
	v := reflect.ValueOf(callback)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, false
	}
	if r.validate {
		t := v.Type()
		if t.NumIn() != 2 || t.IsVariadic() {
			return nil, false
		}
		unitsT := reflect.TypeOf([]styled.Node(nil))
		kindT := reflect.TypeOf(split.UnitKind(0))
		if !unitsT.AssignableTo(t.In(0)) || !kindT.AssignableTo(t.In(1)) {
			return nil, false
		}
	}
	return func(units []styled.Node, kind split.UnitKind) {
		v.Call([]reflect.Value{reflect.ValueOf(units), reflect.ValueOf(kind)})
	}, true
}

// Unregister removes the callback for an element id, reporting wether one
// was registered.
func (r *Registry) Unregister(elementID string) bool {
	_, ok := r.callbacks[elementID]
	delete(r.callbacks, elementID)
	return ok
}

// Has checks for a registered callback.
func (r *Registry) Has(elementID string) bool {
	_, ok := r.callbacks[elementID]
	return ok
}

// ClearAll drops every registration.
func (r *Registry) ClearAll() {
	r.callbacks = make(map[string]Callback)
}

// NotificationResult reports the outcome of one notification.
type NotificationResult struct {
	Success   bool
	Err       string
	Duration  time.Duration
	UnitCount int
}

// Notify synchronously invokes the callback registered for an element id.
// A missing registration is a reported outcome (Success=false with an error
// message), not a failure of the pipeline; a panicking callback is caught,
// recorded and likewise reported.
func (r *Registry) Notify(elementID string, units []styled.Node, kind split.UnitKind) NotificationResult {
	r.stats.TotalNotifications++
	cb, ok := r.callbacks[elementID]
	if !ok {
		r.stats.Failed++
		return NotificationResult{
			Err:       fmt.Sprintf("notify: no callback registered for element %q", elementID),
			UnitCount: len(units),
		}
	}
	start := time.Now()
	err := invoke(cb, units, kind)
	d := time.Since(start)
	r.invoked++
	r.totalDuration += d
	r.stats.AverageDuration = r.totalDuration / time.Duration(r.invoked)
	if err != nil {
		r.stats.Failed++
		tracer().Errorf("notify: callback for %q failed: %v", elementID, err)
		return NotificationResult{Err: err.Error(), Duration: d, UnitCount: len(units)}
	}
	r.stats.Successful++
	return NotificationResult{Success: true, Duration: d, UnitCount: len(units)}
}

func invoke(cb Callback, units []styled.Node, kind split.UnitKind) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("callback panicked: %v", rec)
		}
	}()
	cb(units, kind)
	return nil
}

// Stats are running aggregate numbers over all notifications.
type Stats struct {
	TotalNotifications int
	Successful         int
	Failed             int
	AverageDuration    time.Duration // over actual invocations
}

// Stats returns the registry's aggregate statistics.
func (r *Registry) Stats() Stats {
	return r.stats
}
