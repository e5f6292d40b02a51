// Package validation provides Laravel-style input validation with named rule
// scopes.
//
// # Overview
//
// Rules are pipe-separated strings on a map of field names. An application
// declares them once per entity in a Declaration: a default rule/message set
// plus named overlays ("scopes"). Opening a Session merges the requested
// scope over the defaults and validates an input batch against the merged
// result, so similar forms (registration vs profile editing of the same
// entity) share one declaration.
//
// # Declaring scoped rules
//
//	user := &validation.Declaration{
//	    Rules: validation.Rules{
//	        "username": "required|alpha_dash|min:3",
//	        "email":    "required|email",
//	        "password": "required|min:8|confirmed",
//	    },
//	    Messages: validation.Messages{
//	        "username.required": "Pick a username.",
//	    },
//	    ScopeRules: map[string]validation.Rules{
//	        "profile": {
//	            "name": "required",
//	            "age":  "required|numeric|gte:13",
//	            // password not required when editing a profile
//	            "password": "sometimes|min:8|confirmed",
//	        },
//	    },
//	}
//
// # Sessions
//
//	s := user.Session(req.All(), "profile")
//	if s.Fails() {
//	    res.ValidationError(s.Errors())
//	    return
//	}
//
// Scope merging replaces rules field by field: a field declared in both the
// defaults and the scope takes the scope's rule string outright; fields the
// scope does not mention keep their default rule. An unknown scope name falls
// back to the defaults without error.
//
// # Run-time overrides
//
// A Session owns a private working copy of the merged rules and messages.
// Overrides never touch the Declaration:
//
//	s.SetRule("invite_code", "required|size:8")       // add or replace
//	s.AppendRule("email", "not_in:"+bannedDomains)    // extend an existing rule
//	s.SetMessage("email.not_in", "That provider is not supported.")
//
// AppendRule only extends fields already present — for an unknown field it is
// a no-op and returns false.
//
// # Lazy evaluation
//
// The rule engine runs at most once per session state: the first
// Fails/Passes/Errors/Instance call triggers it and the outcome is cached.
// Any override discards the cache, so the next query sees the new rules.
//
// # The engine
//
// Session hands (inputs, rules, messages) to an Engine and treats the rule
// strings as opaque. The built-in engine is Validator, which also works
// standalone:
//
//	v := validation.Make(map[string]string{
//	    "name":  "Alice",
//	    "email": "alice@example.com",
//	}, validation.Rules{
//	    "name":  "required|min:2|max:100",
//	    "email": "required|email",
//	})
//
//	if v.Fails() {
//	    // v.Errors() returns *Errors with Bag map[string][]string
//	    // JSON: {"errors": {"field": ["message1", "message2"]}}
//	}
//
// # Available rules
//
// String rules:
//   - required — field must be present and non-empty
//   - string   — passes (all Go form values are strings)
//   - min:n    — minimum n UTF-8 characters
//   - max:n    — maximum n UTF-8 characters
//   - size:n   — exactly n UTF-8 characters
//   - between:min,max — length between min and max (inclusive)
//   - alpha    — letters only [a-zA-Z]
//   - alpha_num — letters and numbers [a-zA-Z0-9]
//   - alpha_dash — letters, numbers, dashes, underscores
//   - regex:pattern — must match regexp pattern
//
// Format rules:
//   - email — valid RFC 5322 email address
//   - url   — must start with http:// or https://
//
// Numeric rules:
//   - numeric — parseable as float64
//   - integer — parseable as int
//   - gt:n    — greater than n
//   - gte:n   — greater than or equal to n
//   - lt:n    — less than n
//   - lte:n   — less than or equal to n
//
// Comparison rules:
//   - confirmed       — field_confirmation must match field
//   - same:other      — must equal data[other]
//   - different:other — must not equal data[other]
//
// Type rules:
//   - boolean — true/false/1/0/yes/no (case-insensitive)
//   - in:a,b,c     — value must be in the comma-separated list
//   - not_in:a,b,c — value must NOT be in the comma-separated list
//
// Control rules:
//   - nullable  — allows empty values through
//   - sometimes — skips all rules silently if field is absent
//
// # Custom messages
//
// Messages keys are "field.rule". A match replaces the engine default for
// that failure; everything else keeps the default wording:
//
//	{"errors": {"email": ["We need your email address."]}}
//
// # Concurrency
//
// A Session is a single-caller value: use one per request/goroutine, or add
// synchronization outside. Declarations and the Factory are read-only after
// startup and safe to share.
package validation
