package validation

// ── Engine boundary ──────────────────────────────────────────────────────────

// Outcome is a rule engine's verdict over one input batch.
type Outcome interface {
	// Fails reports whether at least one field failed.
	Fails() bool
	// Errors returns the per-field error bag.
	Errors() *Errors
}

// Engine interprets rule strings against an input batch. The rule and message
// strings are opaque to the Session; only the engine parses them.
//
// This package's Validator is the default Engine.
type Engine func(data map[string]string, rules Rules, messages Messages) Outcome

func defaultEngine(data map[string]string, rules Rules, messages Messages) Outcome {
	return MakeWithMessages(data, rules, messages)
}

// ── Session ──────────────────────────────────────────────────────────────────

// Evaluation states. A mutation after evaluation moves the session to
// sessionDirty rather than back to sessionUnevaluated so the transition is
// observable in one place (invalidate); both non-evaluated states mean the
// same thing to evaluate().
const (
	sessionUnevaluated = iota // no engine call made yet
	sessionEvaluated          // outcome cached
	sessionDirty              // cached outcome discarded after an override
)

// Session is one validation run: an input batch plus a private working copy
// of the resolved rules and messages. Overrides (SetRule, SetMessage,
// AppendRule) mutate only the working copy, never the Declaration.
//
// The engine is invoked lazily, at most once per working-set generation:
// the first Fails/Passes/Instance/Errors call after construction or after an
// override triggers it, later calls reuse the cached Outcome.
//
// Inputs are fixed at construction — validate a new batch with a new Session.
// A Session belongs to a single goroutine; it does no locking of its own.
type Session struct {
	data     map[string]string
	rules    Rules
	messages Messages
	engine   Engine
	state    int
	outcome  Outcome
}

// ── Overrides ────────────────────────────────────────────────────────────────

// SetRule overwrites the working rule for field, creating the field if it is
// not declared yet.
func (s *Session) SetRule(field, rule string) {
	s.rules[field] = rule
	s.invalidate()
}

// SetMessage overwrites the working message for a "field.rule" key.
func (s *Session) SetMessage(key, message string) {
	s.messages[key] = message
	s.invalidate()
}

// AppendRule extends an existing field's rule string with fragment, joined by
// the token delimiter: "required" + "email" → "required|email".
//
// It only extends fields already present in the working set; for an unknown
// field it changes nothing and returns false. Use SetRule to introduce a
// field.
func (s *Session) AppendRule(field, fragment string) bool {
	existing, ok := s.rules[field]
	if !ok {
		return false
	}
	s.rules[field] = existing + Delimiter + fragment
	s.invalidate()
	return true
}

// UseEngine swaps the rule engine and discards any cached outcome.
func (s *Session) UseEngine(e Engine) {
	s.engine = e
	s.invalidate()
}

// ── Queries ──────────────────────────────────────────────────────────────────

// Fails evaluates (if needed) and returns true if any field failed.
func (s *Session) Fails() bool {
	s.evaluate()
	return s.outcome.Fails()
}

// Passes evaluates (if needed) and returns true if every field passed.
func (s *Session) Passes() bool { return !s.Fails() }

// Instance evaluates (if needed) and returns the engine's outcome handle,
// for callers that need engine-specific error detail.
func (s *Session) Instance() Outcome {
	s.evaluate()
	return s.outcome
}

// Errors evaluates (if needed) and returns the error bag.
func (s *Session) Errors() *Errors {
	s.evaluate()
	return s.outcome.Errors()
}

// Rules returns a copy of the working rule set.
func (s *Session) Rules() Rules {
	out := make(Rules, len(s.rules))
	for field, rule := range s.rules {
		out[field] = rule
	}
	return out
}

// Messages returns a copy of the working message set.
func (s *Session) Messages() Messages {
	out := make(Messages, len(s.messages))
	for key, msg := range s.messages {
		out[key] = msg
	}
	return out
}

// ── Cache ────────────────────────────────────────────────────────────────────

func (s *Session) evaluate() {
	if s.state == sessionEvaluated {
		return
	}
	s.outcome = s.engine(s.data, s.rules, s.messages)
	s.state = sessionEvaluated
}

func (s *Session) invalidate() {
	if s.state == sessionEvaluated {
		s.state = sessionDirty
		s.outcome = nil
	}
}
