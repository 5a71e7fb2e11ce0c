package invoices

// State is the outcome of a mutation, returned as data so the
// presentation layer can distinguish "fix your input" (Errors set) from
// "try again later" (Message only) without inspecting error internals.
// A non-empty Redirect means the mutation succeeded and the caller
// should navigate there.
type State struct {
	Errors   map[string][]string `json:"errors,omitempty"`
	Message  string              `json:"message,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// OK reports whether the mutation completed without a validation or
// persistence failure.
func (s State) OK() bool {
	return len(s.Errors) == 0 && s.Message == ""
}
