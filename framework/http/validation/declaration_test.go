package validation_test

import (
	"reflect"
	"testing"

	"github.com/km-arc/go-validation/framework/http/validation"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func userDeclaration() *validation.Declaration {
	return &validation.Declaration{
		Rules: validation.Rules{
			"username": "required",
			"email":    "required|email",
		},
		Messages: validation.Messages{
			"email.required": "We need your email address.",
		},
		ScopeRules: map[string]validation.Rules{
			"profile": {
				"name": "required",
				"age":  "required|numeric|min:13",
			},
		},
		ScopeMessages: map[string]validation.Messages{
			"profile": {
				"age.required": "Tell us your age.",
			},
		},
	}
}

func wantRules(t *testing.T, got, want validation.Rules) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rules:\n got  %v\n want %v", got, want)
	}
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestResolve_DefaultScope(t *testing.T) {
	d := userDeclaration()
	rules, messages := d.Resolve(validation.DefaultScope)

	wantRules(t, rules, validation.Rules{
		"username": "required",
		"email":    "required|email",
	})
	if messages["email.required"] != "We need your email address." {
		t.Errorf("messages: got %v", messages)
	}
}

func TestResolve_ScopeMergesOverDefaults(t *testing.T) {
	d := userDeclaration()
	rules, _ := d.Resolve("profile")

	wantRules(t, rules, validation.Rules{
		"username": "required",
		"email":    "required|email",
		"name":     "required",
		"age":      "required|numeric|min:13",
	})
}

func TestResolve_ScopeReplacesSharedField(t *testing.T) {
	d := userDeclaration()
	d.ScopeRules["profile"]["email"] = "sometimes|email"

	rules, _ := d.Resolve("profile")

	// Replacement, never a concatenation of both rule strings.
	if rules["email"] != "sometimes|email" {
		t.Errorf("email: got %q want %q", rules["email"], "sometimes|email")
	}
}

func TestResolve_FieldAbsentFromScopeKeepsDefault(t *testing.T) {
	d := userDeclaration()
	rules, _ := d.Resolve("profile")

	if rules["username"] != "required" {
		t.Errorf("username: got %q want %q", rules["username"], "required")
	}
}

func TestResolve_ScopeMessagesMerge(t *testing.T) {
	d := userDeclaration()
	_, messages := d.Resolve("profile")

	if messages["age.required"] != "Tell us your age." {
		t.Errorf("scope message missing: %v", messages)
	}
	if messages["email.required"] != "We need your email address." {
		t.Errorf("default message lost: %v", messages)
	}
}

func TestResolve_UnknownScopeFallsBackToDefaults(t *testing.T) {
	d := userDeclaration()

	// A misspelled scope is not an error — it silently resolves to the
	// defaults, so a typo shows up as over- or under-validation, not a crash.
	gotRules, gotMessages := d.Resolve("nonexistent")
	defRules, defMessages := d.Resolve(validation.DefaultScope)

	if !reflect.DeepEqual(gotRules, defRules) {
		t.Errorf("rules: got %v want defaults %v", gotRules, defRules)
	}
	if !reflect.DeepEqual(gotMessages, defMessages) {
		t.Errorf("messages: got %v want defaults %v", gotMessages, defMessages)
	}
}

func TestResolve_UnknownScopeWithNilOverlayMaps(t *testing.T) {
	d := &validation.Declaration{Rules: validation.Rules{"name": "required"}}

	rules, messages := d.Resolve("anything")

	wantRules(t, rules, validation.Rules{"name": "required"})
	if len(messages) != 0 {
		t.Errorf("messages: got %v want empty", messages)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	d := userDeclaration()

	r1, m1 := d.Resolve("profile")
	r2, m2 := d.Resolve("profile")

	if !reflect.DeepEqual(r1, r2) || !reflect.DeepEqual(m1, m2) {
		t.Error("two resolves of the same scope should be equal by value")
	}
}

func TestResolve_NeverMutatesDeclaration(t *testing.T) {
	d := userDeclaration()
	before := make(validation.Rules, len(d.Rules))
	for f, r := range d.Rules {
		before[f] = r
	}

	rules, _ := d.Resolve("profile")
	rules["username"] = "tampered"
	rules["injected"] = "required"

	wantRules(t, d.Rules, before)
	if _, ok := d.Rules["name"]; ok {
		t.Error("scope fields must not leak into the declared defaults")
	}
}

// ── Session construction ─────────────────────────────────────────────────────

func TestSession_OmittedScopeEqualsDefault(t *testing.T) {
	d := userDeclaration()

	implicit := d.Session(map[string]string{})
	explicit := d.Session(map[string]string{}, validation.DefaultScope)

	if !reflect.DeepEqual(implicit.Rules(), explicit.Rules()) {
		t.Error("omitting the scope should equal the default-scope sentinel")
	}
}

func TestSession_WorkingSetIsPrivateCopy(t *testing.T) {
	d := userDeclaration()
	s := d.Session(map[string]string{}, "profile")

	s.SetRule("username", "required|min:5")

	if d.Rules["username"] != "required" {
		t.Errorf("override leaked into declaration: %q", d.Rules["username"])
	}

	// A second session is unaffected by the first's overrides.
	other := d.Session(map[string]string{}, "profile")
	if other.Rules()["username"] != "required" {
		t.Errorf("sessions share a working set: %q", other.Rules()["username"])
	}
}
