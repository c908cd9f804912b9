package theory

// WithWarnings pairs a result value with an accumulated list of non-fatal
// warnings, grounded in src/convenience/with_warnings/mod.rs. Validation
// in the task pipeline never halts on a warning (spec §7 "warnings never
// halt processing") — only a genuine *Result error return does that.
type WithWarnings[D any] struct {
	Data     D
	Warnings []string
}

// Flawless wraps data with no warnings.
func Flawless[D any](data D) WithWarnings[D] {
	return WithWarnings[D]{Data: data}
}

// AddWarning appends one warning and returns the receiver, for chaining.
func (w WithWarnings[D]) AddWarning(warning string) WithWarnings[D] {
	w.Warnings = append(w.Warnings, warning)
	return w
}

// PrefaceWarnings prepends warnings ahead of any the receiver already
// carries, preserving the order in which validation stages ran.
func (w WithWarnings[D]) PrefaceWarnings(warnings []string) WithWarnings[D] {
	combined := make([]string, 0, len(warnings)+len(w.Warnings))
	combined = append(combined, warnings...)
	combined = append(combined, w.Warnings...)
	w.Warnings = combined
	return w
}
