package beanreport

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Report is the contract every report implements: a canonical name, the
// aliases it can be invoked by, a one-line synopsis for the listing, an
// argument schema, and the render operation itself.
//
// Reports are stateless across invocations: Render may be called any number
// of times against the same ledger snapshot and must produce identical
// output without mutating the snapshot.
type Report interface {
	Name() string
	Aliases() []string
	Synopsis() string
	SetFlags(f *flag.FlagSet)
	Render(l *Ledger, w io.Writer) error
}

// Registry is the process-wide set of available reports. It is built once
// at startup and read-only afterwards: Register is part of construction,
// not a runtime operation, so no synchronization is needed.
type Registry struct {
	reports []Report
	index   map[string]Report
}

// NewRegistry builds a registry from the given reports, in order. It fails
// with a *DuplicateReportError when two reports collide on a canonical name
// or alias.
func NewRegistry(reports ...Report) (*Registry, error) {
	r := &Registry{index: make(map[string]Report)}
	for _, rep := range reports {
		if err := r.Register(rep); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a report under its canonical name and all of its aliases.
func (r *Registry) Register(rep Report) error {
	names := append([]string{rep.Name()}, rep.Aliases()...)
	for _, n := range names {
		if _, taken := r.index[n]; taken {
			return &DuplicateReportError{Name: n}
		}
	}
	for _, n := range names {
		r.index[n] = rep
	}
	r.reports = append(r.reports, rep)
	return nil
}

// Resolve returns the report registered under the given canonical name or
// alias. The match is case-sensitive, and a miss returns nil: an unknown
// name is a normal outcome at this level, not an error.
func (r *Registry) Resolve(name string) Report {
	return r.index[name]
}

// All returns the registered reports in registration order.
func (r *Registry) All() []Report {
	return slices.Clone(r.reports)
}

// ListString renders the help listing of every registered report.
func (r *Registry) ListString() string {
	var b strings.Builder
	b.WriteString("Available reports:\n")
	for _, rep := range r.reports {
		b.WriteString(describe(rep))
	}
	return b.String()
}

// Describe renders the listing entry of a single report. It reports false
// when the name does not resolve.
func (r *Registry) Describe(name string) (string, bool) {
	rep := r.Resolve(name)
	if rep == nil {
		return "", false
	}
	return describe(rep), true
}

func describe(rep Report) string {
	names := append([]string{rep.Name()}, rep.Aliases()...)
	return fmt.Sprintf("  %-24s %s\n", strings.Join(names, ","), rep.Synopsis())
}
