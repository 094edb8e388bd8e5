package search

// FilterSet tracks which of the configured types are currently active.
// Membership is kept in configuration (table) order. The set is never
// empty: toggling off the last active type resets it to all configured
// types instead.
type FilterSet struct {
	configured []string
	active     map[string]bool
}

// NewFilterSet creates a filter set with every configured type active.
func NewFilterSet(configured []string) *FilterSet {
	f := &FilterSet{configured: configured}
	f.Reset()
	return f
}

// Reset activates every configured type.
func (f *FilterSet) Reset() {
	f.active = make(map[string]bool, len(f.configured))
	for _, t := range f.configured {
		f.active[t] = true
	}
}

// Toggle applies the chip transition for type t:
//   - t active and the sole active type: reset to all configured types
//   - t active alongside others: exclusive-select t
//   - t inactive: add t to the active set
//
// Unconfigured types are ignored.
func (f *FilterSet) Toggle(t string) {
	if !f.isConfigured(t) {
		return
	}
	switch {
	case f.active[t] && f.ActiveCount() == 1:
		f.Reset()
	case f.active[t]:
		f.active = map[string]bool{t: true}
	default:
		f.active[t] = true
	}
}

// Active returns the active type keys in configuration order.
func (f *FilterSet) Active() []string {
	out := make([]string, 0, len(f.configured))
	for _, t := range f.configured {
		if f.active[t] {
			out = append(out, t)
		}
	}
	return out
}

// IsActive reports whether type t is currently active.
func (f *FilterSet) IsActive(t string) bool {
	return f.active[t]
}

// ActiveCount returns the number of active types.
func (f *FilterSet) ActiveCount() int {
	n := 0
	for _, t := range f.configured {
		if f.active[t] {
			n++
		}
	}
	return n
}

// Configured returns the configured type keys in order.
func (f *FilterSet) Configured() []string {
	return f.configured
}

func (f *FilterSet) isConfigured(t string) bool {
	for _, c := range f.configured {
		if c == t {
			return true
		}
	}
	return false
}
