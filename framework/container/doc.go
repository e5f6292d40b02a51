// Package container provides a Laravel-compatible IoC (Inversion of Control)
// container and Service Provider system for Go.
//
// # Overview
//
// The container manages the instantiation and lifecycle of the application's
// services — here, chiefly the validator factory, the router, and the config.
// It supports transient bindings, singletons, pre-built instances, aliases,
// and extension (decoration).
//
// It mirrors the public API of Laravel's Illuminate\Container\Container as
// far as this library needs. Because Go has no runtime constructor
// reflection, auto-wiring is replaced by explicit factory functions.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&ValidationServiceProvider{...})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Serve requests
//
// # Bindings
//
//	// Transient — new instance every Make()
//	c.Bind("audit.session", func(c *container.Container) any {
//	    return auditDecl.Session(nil)
//	})
//
//	// Singleton — created once, reused
//	c.Singleton("validator", func(c *container.Container) any {
//	    return validation.NewFactory()
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
//	// Alias
//	c.Alias("validator", "validation.factory")
//
// # Resolving
//
//	// Untyped
//	raw := c.Make("validator")
//
//	// Generic (preferred — no type assertion required)
//	f := container.Resolve[*validation.Factory](c, "validator")
//
// # Extend / Decorate
//
//	// Add declarations to an already-bound factory without rebinding it
//	c.Extend("validator", func(instance any, c *container.Container) any {
//	    f := instance.(*validation.Factory)
//	    f.Register("invite", inviteDecl)
//	    return f
//	})
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("validator", func(c *container.Container) any {
//	        return validation.NewFactory()
//	    })
//	}
//
//	func (p *AppServiceProvider) Boot(app *container.Container) {
//	    // safe to resolve other bindings here
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// # Deferred Providers
//
// A provider that returns true from IsDeferred() and lists its abstracts in
// Provides() is not registered until one of those abstracts is first
// resolved — the validator factory is bound this way, so applications that
// never validate never build it.
package container
