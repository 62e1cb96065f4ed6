// Package engine is the entry point the service and the CLI share. It resolves
// templates, builds the projection plan once per call and hands it to the live
// and static renderers.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/projection"
	"github.com/jonathan/portfolio-builder/internal/rendering"
	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// Engine renders portfolio states through the registered templates
type Engine struct {
	registry *templates.Registry
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClock sets the time source used for footers and archive timestamps
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New returns an engine over registry. A nil registry means the built-in templates.
func New(registry *templates.Registry, opts ...Option) (*Engine, error) {
	if registry == nil {
		r, err := templates.NewBuiltinRegistry()
		if err != nil {
			return nil, err
		}
		registry = r
	}
	e := &Engine{registry: registry, logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Registry returns the template registry
func (e *Engine) Registry() *templates.Registry {
	return e.registry
}

// ListTemplates returns metadata for every template in display order
func (e *Engine) ListTemplates() []types.TemplateInfo {
	return e.registry.List()
}

// Resolve picks the template for id, falling back to the default when id is
// unknown. Fallbacks are logged and reported in the Resolution.
func (e *Engine) Resolve(id string) (*templates.Config, templates.Resolution, error) {
	cfg, res, err := e.registry.ResolveOrDefault(id)
	if err != nil {
		return nil, res, err
	}
	if res.FellBack {
		e.logger.Warn("template not found, using default",
			zap.String("requested", res.Requested),
			zap.String("used", res.Used))
	}
	return cfg, res, nil
}

// Plan builds the projection plan for the state's selected template
func (e *Engine) Plan(state *types.PortfolioState) (*projection.Page, templates.Resolution, error) {
	if state == nil {
		return nil, templates.Resolution{}, &rendering.RenderError{Message: "nil portfolio state"}
	}
	cfg, res, err := e.Resolve(state.SelectedTemplate)
	if err != nil {
		return nil, res, err
	}
	return e.planFor(cfg, state), res, nil
}

func (e *Engine) planFor(cfg *templates.Config, state *types.PortfolioState) *projection.Page {
	return projection.Build(cfg, state, projection.Options{Year: e.now().Year()})
}

// RenderLive produces the live node tree
func (e *Engine) RenderLive(state *types.PortfolioState) (*rendering.Tree, templates.Resolution, error) {
	page, res, err := e.Plan(state)
	if err != nil {
		return nil, res, err
	}
	return rendering.Render(page), res, nil
}

// Preview produces the live tree wrapped in a complete HTML page
func (e *Engine) Preview(state *types.PortfolioState) (string, templates.Resolution, error) {
	tree, res, err := e.RenderLive(state)
	if err != nil {
		return "", res, err
	}
	out, err := rendering.Document(tree)
	return out, res, err
}

// GenerateDocument produces the standalone static document
func (e *Engine) GenerateDocument(state *types.PortfolioState) (export.Document, templates.Resolution, error) {
	page, res, err := e.Plan(state)
	if err != nil {
		return export.Document{}, res, err
	}
	cfg, err := e.registry.Get(res.Used)
	if err != nil {
		return export.Document{}, res, err
	}
	html, err := export.GenerateDocument(page)
	if err != nil {
		return export.Document{}, res, err
	}
	return export.Document{HTML: html, Template: cfg.Info}, res, nil
}

// Export generates the static document and packages it. Every failure comes
// back as a *export.PackagingError.
func (e *Engine) Export(ctx context.Context, state *types.PortfolioState, progress export.ProgressFunc) (*export.Archive, templates.Resolution, error) {
	doc, res, err := e.GenerateDocument(state)
	if err != nil {
		return nil, res, &export.PackagingError{Stage: export.StageRender, Message: "failed to generate document", Cause: err}
	}
	archive, err := export.Packager{Now: e.now}.Package(ctx, doc, state, progress)
	if err != nil {
		e.logger.Error("export failed", zap.String("template", res.Used), zap.Error(err))
		return nil, res, err
	}
	e.logger.Info("export packaged",
		zap.String("template", res.Used),
		zap.String("archive", archive.Name),
		zap.Int("bytes", archive.Size))
	return archive, res, nil
}

// ArchiveName is the download name for state
func ArchiveName(state *types.PortfolioState) string {
	if state == nil {
		return export.ArchiveName("")
	}
	return export.ArchiveName(state.UserData.Name)
}
