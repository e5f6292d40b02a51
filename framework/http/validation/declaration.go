package validation

// DefaultScope selects the declared defaults with no overlay applied.
const DefaultScope = ""

// ── Declaration ──────────────────────────────────────────────────────────────

// Declaration is an application author's rule and message declaration for one
// entity. Rules/Messages are the defaults; ScopeRules/ScopeMessages hold
// named overlays that are merged over the defaults when a Session is opened
// with that scope name ("registration" vs "profile" editing of the same
// entity, without duplicating the shared rules).
//
// A Declaration is built once and read by every Session created from it —
// never mutated by them.
type Declaration struct {
	Rules    Rules
	Messages Messages

	// Overlay collections keyed by scope name.
	ScopeRules    map[string]Rules
	ScopeMessages map[string]Messages
}

// Resolve merges the declared defaults with the named scope's overlay and
// returns fresh copies.
//
// Merge rules:
//   - fields present in both keep the overlay's rule outright (replacement,
//     never a union of rule tokens — see Session.AppendRule for that)
//   - fields absent from the overlay keep their default rule
//   - an unknown scope name is not an error: resolution falls back to the
//     defaults alone
//
// Resolve never mutates the declared collections; the same inputs always
// produce equal output.
func (d *Declaration) Resolve(scope string) (Rules, Messages) {
	rules := make(Rules, len(d.Rules))
	for field, rule := range d.Rules {
		rules[field] = rule
	}
	messages := make(Messages, len(d.Messages))
	for key, msg := range d.Messages {
		messages[key] = msg
	}

	if scope == DefaultScope {
		return rules, messages
	}

	// Missing scope → nil maps, both loops are no-ops.
	for field, rule := range d.ScopeRules[scope] {
		rules[field] = rule
	}
	for key, msg := range d.ScopeMessages[scope] {
		messages[key] = msg
	}
	return rules, messages
}

// Session opens a validation session over data. An optional scope name
// selects which overlay to merge; omitted means defaults only.
//
//	s := decl.Session(req.All(), "profile")
//	if s.Fails() { ... }
func (d *Declaration) Session(data map[string]string, scope ...string) *Session {
	name := DefaultScope
	if len(scope) > 0 {
		name = scope[0]
	}
	rules, messages := d.Resolve(name)
	return &Session{
		data:     data,
		rules:    rules,
		messages: messages,
		engine:   defaultEngine,
	}
}
