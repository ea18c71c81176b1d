// Package hook installs hook policies into a live object runtime and reports
// what happened to each.
package hook

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/intercept"
	"github.com/daimatz/objhook/pkg/objrt"
)

// State is the lifecycle state of one hook.
type State int

const (
	StateUnresolved State = iota
	StateResolved
	StateInstalled
	StateAbsent
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolved:
		return "resolved"
	case StateInstalled:
		return "installed"
	case StateAbsent:
		return "absent"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result is the outcome of one policy.
type Result struct {
	Hook      string
	Class     string
	Signature string
	State     State
	Err       error
}

// Report lists results in policy order.
type Report struct {
	Results []Result
}

// Installed returns the number of installed hooks.
func (r *Report) Installed() int {
	n := 0
	for _, res := range r.Results {
		if res.State == StateInstalled {
			n++
		}
	}
	return n
}

// Result returns the result for the named hook.
func (r *Report) Result(hook string) (Result, bool) {
	for _, res := range r.Results {
		if res.Hook == hook {
			return res, true
		}
	}
	return Result{}, false
}

// Driver installs policies in order. Each policy succeeds or fails on its
// own; Run never panics and always returns a report.
type Driver struct {
	Policies []Policy
	Sink     Sink
	Metrics  *Metrics
}

var discard = SinkFunc(func(Event) {})

// NewDriver creates a Driver. A nil sink discards events.
func NewDriver(sink Sink, metrics *Metrics, policies ...Policy) *Driver {
	if sink == nil {
		sink = discard
	}
	return &Driver{Policies: policies, Sink: sink, Metrics: metrics}
}

// Run resolves and installs every policy against p.
//
// If p is unavailable, one runtime-unavailable event is emitted and nothing
// is resolved. A missing class is reported once and skips every policy on it.
// A missing method skips only its own policy. A nil Sink discards events.
func (d *Driver) Run(p intercept.Provider) *Report {
	sink := d.Sink
	if sink == nil {
		sink = discard
	}
	report := &Report{Results: make([]Result, len(d.Policies))}
	for i, pol := range d.Policies {
		report.Results[i] = Result{Hook: pol.Name, Class: pol.Class, Signature: pol.Signature, State: StateUnresolved}
	}

	acc, err := intercept.NewAccessor(p)
	if err != nil {
		sink.Emit(Event{Kind: EventRuntimeUnavailable, Line: "[-] object runtime not available.", Err: err})
		for i := range report.Results {
			d.finish(&report.Results[i], StateAbsent, err)
		}
		return report
	}

	classes := make(map[string]*objrt.Class)
	missing := make(map[string]bool)
	for i := range d.Policies {
		pol := &d.Policies[i]
		res := &report.Results[i]

		cls, ok := classes[pol.Class]
		if !ok && !missing[pol.Class] {
			cls, ok = acc.ResolveClass(pol.Class)
			if ok {
				classes[pol.Class] = cls
			} else {
				missing[pol.Class] = true
				sink.Emit(Event{
					Kind:  EventClassNotFound,
					Hook:  pol.Name,
					Class: pol.Class,
					Line:  fmt.Sprintf("[-] %s class not found.", pol.Class),
					Err:   intercept.ErrClassNotFound,
				})
			}
		}
		if !ok {
			d.finish(res, StateAbsent, errors.Wrap(intercept.ErrClassNotFound, pol.Class))
			continue
		}

		m, ok := acc.ResolveMethod(cls, pol.Signature)
		if !ok {
			err := errors.Wrap(intercept.ErrMethodNotFound, bracket(pol.Class, pol.Signature))
			sink.Emit(Event{
				Kind:      EventMethodNotFound,
				Hook:      pol.Name,
				Class:     pol.Class,
				Signature: pol.Signature,
				Line:      fmt.Sprintf("[-] %s not found.", bracket(pol.Class, pol.Signature)),
				Err:       err,
			})
			d.finish(res, StateAbsent, err)
			continue
		}
		res.State = StateResolved

		if err := d.install(pol, m, sink); err != nil {
			sink.Emit(Event{
				Kind:      EventInstallFailed,
				Hook:      pol.Name,
				Class:     pol.Class,
				Signature: pol.Signature,
				Line:      fmt.Sprintf("[-] failed to hook %s: %v", bracket(pol.Class, pol.Signature), err),
				Err:       err,
			})
			d.finish(res, StateFailed, err)
			continue
		}

		format := pol.InstalledFormat
		if format == "" {
			format = "[+] Hooked %s."
		}
		sink.Emit(Event{
			Kind:      EventHookInstalled,
			Hook:      pol.Name,
			Class:     pol.Class,
			Signature: pol.Signature,
			Line:      fmt.Sprintf(format, bracket(pol.Class, pol.Signature)),
		})
		d.finish(res, StateInstalled, nil)
	}
	return report
}

func (d *Driver) install(pol *Policy, m *objrt.Method, sink Sink) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("building replacement panicked: %v", r)
		}
	}()
	if pol.Replacement == nil {
		return errors.Wrap(intercept.ErrConventionMismatch, "policy has no replacement")
	}
	target := &Target{Policy: pol, Method: m, sink: sink, metrics: d.Metrics}
	r, err := intercept.Implement(m, pol.Replacement(target))
	if err != nil {
		return err
	}
	return intercept.Install(m, r)
}

func (d *Driver) finish(res *Result, s State, err error) {
	res.State = s
	res.Err = err
	d.Metrics.observeOutcome(res.Hook, s)
}
