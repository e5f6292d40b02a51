package providers

import (
	"github.com/km-arc/go-validation/framework/config"
	"github.com/km-arc/go-validation/framework/container"
	"github.com/km-arc/go-validation/framework/http/validation"
	"github.com/km-arc/go-validation/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound abstracts:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	app.Alias("config", "configuration")
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound abstracts:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(c *container.Container) any {
		return routing.New()
	})
}

// ── ValidationServiceProvider ─────────────────────────────────────────────────

// ValidationServiceProvider registers the validator factory, pre-loaded with
// the application's declarations. It is deferred: the factory is only built
// when "validator" is first resolved, so applications that never validate
// never pay for it.
//
// Bound abstracts:
//   - "validator"  → *validation.Factory
//
// Laravel equivalent:
//
//	// Illuminate\Validation\ValidationServiceProvider (deferrable)
//	$app->singleton('validator', fn($app) => new Factory(...));
type ValidationServiceProvider struct {
	container.BaseProvider

	// Declarations to pre-register, keyed by entity name.
	Declarations map[string]*validation.Declaration
}

func (p *ValidationServiceProvider) Register(app *container.Container) {
	decls := p.Declarations
	app.Singleton("validator", func(c *container.Container) any {
		f := validation.NewFactory()
		for name, d := range decls {
			f.Register(name, d)
		}
		return f
	})
}

func (p *ValidationServiceProvider) IsDeferred() bool   { return true }
func (p *ValidationServiceProvider) Provides() []string { return []string{"validator"} }
