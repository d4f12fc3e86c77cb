// Package reactive binds control values to the callbacks that recompute
// outputs from them.
//
// Each Callback declares the controls it reads and the single output it
// writes. When a control changes, Dispatch runs the callbacks subscribed to
// it, one at a time and in registration order. A callback whose inputs have
// not all settled is reported as pending instead of being run.
package reactive

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownControl    = errors.New("unknown control")
	ErrInvalidCallback   = errors.New("invalid callback")
	ErrDuplicateCallback = errors.New("duplicate callback")
	ErrUnsettled         = errors.New("input not settled")
)

// Callback recomputes one output from the values of its inputs.
type Callback struct {
	ID     string
	Inputs []string
	Output string
	Run    func(ctx context.Context, in Values) (any, error)
}

// Update is the new content of one output.
type Update struct {
	Callback string `json:"callback"`
	Output   string `json:"output"`
	Result   any    `json:"result"`
}

// Pending is a callback that was not run because some inputs had no value.
type Pending struct {
	Callback string   `json:"callback"`
	Output   string   `json:"output"`
	Missing  []string `json:"missing"`
}

// Result is the outcome of one Dispatch.
type Result struct {
	Updates []Update  `json:"updates"`
	Pending []Pending `json:"pending"`
}

// Registry holds the declared controls and the callbacks subscribed to them.
// It is built once at startup and only read afterwards.
type Registry struct {
	controls  map[string]bool
	callbacks []Callback
	byInput   map[string][]int
	outputs   map[string]string
}

// NewRegistry creates a registry that accepts callbacks reading the given controls.
func NewRegistry(controls ...string) *Registry {
	r := &Registry{
		controls: make(map[string]bool, len(controls)),
		byInput:  make(map[string][]int),
		outputs:  make(map[string]string),
	}
	for _, c := range controls {
		r.controls[c] = true
	}
	return r
}

// Register adds cb. Every input must be a declared control, and no two
// callbacks may share an ID or an output.
func (r *Registry) Register(cb Callback) error {
	switch {
	case cb.ID == "":
		return fmt.Errorf("%w: missing ID", ErrInvalidCallback)
	case cb.Run == nil:
		return fmt.Errorf("%w: %s has no Run function", ErrInvalidCallback, cb.ID)
	case len(cb.Inputs) == 0:
		return fmt.Errorf("%w: %s declares no inputs", ErrInvalidCallback, cb.ID)
	case cb.Output == "":
		return fmt.Errorf("%w: %s declares no output", ErrInvalidCallback, cb.ID)
	}

	for _, existing := range r.callbacks {
		if existing.ID == cb.ID {
			return fmt.Errorf("%w: ID %s already registered", ErrDuplicateCallback, cb.ID)
		}
	}
	if owner, ok := r.outputs[cb.Output]; ok {
		return fmt.Errorf("%w: output %s already written by %s", ErrDuplicateCallback, cb.Output, owner)
	}

	seen := make(map[string]bool, len(cb.Inputs))
	for _, in := range cb.Inputs {
		if !r.controls[in] {
			return fmt.Errorf("%w: %s reads %s", ErrUnknownControl, cb.ID, in)
		}
		if seen[in] {
			return fmt.Errorf("%w: %s reads %s twice", ErrInvalidCallback, cb.ID, in)
		}
		if in == cb.Output {
			return fmt.Errorf("%w: %s writes its own input %s", ErrInvalidCallback, cb.ID, in)
		}
		seen[in] = true
	}

	cb.Inputs = append([]string(nil), cb.Inputs...)
	index := len(r.callbacks)
	r.callbacks = append(r.callbacks, cb)
	r.outputs[cb.Output] = cb.ID
	for _, in := range cb.Inputs {
		r.byInput[in] = append(r.byInput[in], index)
	}
	return nil
}

// HasControl reports whether id is a declared control.
func (r *Registry) HasControl(id string) bool {
	return r.controls[id]
}

// Callbacks returns every registered callback in registration order.
func (r *Registry) Callbacks() []Callback {
	return append([]Callback(nil), r.callbacks...)
}

// Subscribers returns the callbacks reading control, in registration order.
func (r *Registry) Subscribers(control string) []Callback {
	indexes := r.byInput[control]
	out := make([]Callback, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, r.callbacks[i])
	}
	return out
}

// Dispatch runs the callbacks affected by a change of control changed, given
// the current values of all controls. An empty changed means the initial
// render and runs every callback. Callbacks run sequentially; the first
// callback error aborts the dispatch.
func (r *Registry) Dispatch(ctx context.Context, changed string, in Values) (Result, error) {
	var targets []Callback
	if changed == "" {
		targets = r.callbacks
	} else {
		if !r.controls[changed] {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownControl, changed)
		}
		targets = r.Subscribers(changed)
	}

	result := Result{
		Updates: make([]Update, 0, len(targets)),
		Pending: []Pending{},
	}
	for _, cb := range targets {
		if missing := missingInputs(cb, in); len(missing) > 0 {
			result.Pending = append(result.Pending, Pending{
				Callback: cb.ID,
				Output:   cb.Output,
				Missing:  missing,
			})
			continue
		}

		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		value, err := cb.Run(ctx, in)
		if err != nil {
			return Result{}, fmt.Errorf("callback %s: %w", cb.ID, err)
		}
		result.Updates = append(result.Updates, Update{
			Callback: cb.ID,
			Output:   cb.Output,
			Result:   value,
		})
	}

	return result, nil
}

func missingInputs(cb Callback, in Values) []string {
	var missing []string
	for _, id := range cb.Inputs {
		if !in.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
