package validation

import "fmt"

// Factory is a named registry of Declarations — the piece an application
// binds into the service container so handlers can open sessions by entity
// name instead of passing Declaration values around.
//
//	f := validation.NewFactory()
//	f.Register("user", userDeclaration)
//	...
//	s, err := f.Session("user", req.All(), "profile")
type Factory struct {
	decls map[string]*Declaration
}

// NewFactory creates an empty Factory.
func NewFactory() *Factory {
	return &Factory{decls: make(map[string]*Declaration)}
}

// Register stores a Declaration under name, replacing any previous one.
func (f *Factory) Register(name string, d *Declaration) {
	f.decls[name] = d
}

// Declaration returns the Declaration registered under name.
func (f *Factory) Declaration(name string) (*Declaration, bool) {
	d, ok := f.decls[name]
	return d, ok
}

// Session opens a session for the named Declaration. Unlike an unknown scope
// (which falls back to defaults), an unregistered name is a wiring mistake
// and returns an error.
func (f *Factory) Session(name string, data map[string]string, scope ...string) (*Session, error) {
	d, ok := f.decls[name]
	if !ok {
		return nil, fmt.Errorf("validation: no declaration registered for [%s]", name)
	}
	return d.Session(data, scope...), nil
}
