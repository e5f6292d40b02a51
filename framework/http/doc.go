// Package http provides Laravel-compatible request and response helpers
// around the validation layer.
//
// # Request
//
// Request wraps *http.Request with a fluent API mirroring Laravel's
// Illuminate\Http\Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Flat input batch for a validation session (query + form body)
//	s := userDecl.Session(req.All(), "profile")
//
//	// Bind JSON / form body into a struct
//	var payload struct {
//	    Name string `json:"name"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	// Input retrieval
//	name := req.Input("name", "default")
//	page := req.Query("page", "1")
//	ok   := req.Has("name")
//
//	// Route params (chi), headers, auth
//	id    := req.RouteParam("id")
//	token := req.BearerToken()
//
// # Response
//
// Response wraps http.ResponseWriter with JSON envelope helpers and the 422
// validation payload Laravel clients expect:
//
//	res := gohttp.NewResponse(w)
//	if s.Fails() {
//	    // {"errors": {"field": ["message", ...]}}
//	    res.ValidationError(s.Errors())
//	    return
//	}
//	res.Created(map[string]any{"id": id})
package http
