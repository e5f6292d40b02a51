package main

import (
	"net/http"

	"github.com/km-arc/go-validation/framework/app"
	gohttp "github.com/km-arc/go-validation/framework/http"
	"github.com/km-arc/go-validation/framework/http/validation"
)

// user is declared once: default rules cover registration, the "profile"
// scope overlays the extra fields (and relaxes the password) for editing.
var user = &validation.Declaration{
	Rules: validation.Rules{
		"username": "required|alpha_dash|min:3|max:32",
		"email":    "required|email",
		"password": "required|min:8|confirmed",
	},
	Messages: validation.Messages{
		"username.alpha_dash": "Usernames may only contain letters, numbers, dashes and underscores.",
	},
	ScopeRules: map[string]validation.Rules{
		"profile": {
			"name":     "required|max:100",
			"age":      "required|numeric|gte:13",
			"password": "sometimes|min:8|confirmed",
		},
	},
	ScopeMessages: map[string]validation.Messages{
		"profile": {
			"age.gte": "You must be at least 13 to use this service.",
		},
	},
}

func main() {
	application := app.New(map[string]*validation.Declaration{
		"user": user,
	}) // loads .env automatically

	r := application.Router()
	factory := application.Validator()

	// POST /register — default scope
	r.Post("/register", func(w http.ResponseWriter, req *http.Request) {
		request := gohttp.NewRequest(req)
		res := gohttp.NewResponse(w)

		s, err := factory.Session("user", request.All())
		if err != nil {
			res.ServerError(err.Error())
			return
		}

		// Invite-only deployments tighten the rules at run time.
		if application.Config().App.Env == "production" {
			s.SetRule("invite_code", "required|size:8")
			s.SetMessage("invite_code.required", "Registration is invite-only right now.")
		}

		if s.Fails() {
			res.ValidationError(s.Errors())
			return
		}
		res.Created(map[string]any{
			"username": request.Input("username"),
			"email":    request.Input("email"),
		})
	})

	// PUT /profile — "profile" scope merged over the defaults
	r.Put("/profile", func(w http.ResponseWriter, req *http.Request) {
		request := gohttp.NewRequest(req)
		res := gohttp.NewResponse(w)

		s, err := factory.Session("user", request.All(), "profile")
		if err != nil {
			res.ServerError(err.Error())
			return
		}

		// Extends the merged email rule; a no-op if a scope ever drops the field.
		s.AppendRule("email", "not_in:admin@example.com")

		if s.Fails() {
			res.ValidationError(s.Errors())
			return
		}
		res.Success(map[string]any{"updated": true})
	})

	application.Run()
}
