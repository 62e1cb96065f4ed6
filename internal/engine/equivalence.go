package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolio-builder/internal/export"
	"github.com/jonathan/portfolio-builder/internal/rendering"
	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// EquivalenceReport compares the visible text of both rendering paths for one template
type EquivalenceReport struct {
	TemplateID string   `json:"template_id"`
	Equal      bool     `json:"equal"`
	LiveOnly   []string `json:"live_only,omitempty"`
	StaticOnly []string `json:"static_only,omitempty"`
}

// CheckEquivalence renders cfg through both paths from a single plan and diffs
// the visible text sets
func (e *Engine) CheckEquivalence(cfg *templates.Config, state *types.PortfolioState) (*EquivalenceReport, error) {
	page := e.planFor(cfg, state)

	live, err := rendering.Render(page).HTML()
	if err != nil {
		return nil, err
	}
	static, err := export.GenerateDocument(page)
	if err != nil {
		return nil, err
	}

	liveText, err := rendering.VisibleText(live)
	if err != nil {
		return nil, fmt.Errorf("live output: %w", err)
	}
	staticText, err := rendering.VisibleText(static)
	if err != nil {
		return nil, fmt.Errorf("static output: %w", err)
	}

	onlyLive, onlyStatic := rendering.Diff(liveText, staticText)
	return &EquivalenceReport{
		TemplateID: cfg.ID(),
		Equal:      len(onlyLive) == 0 && len(onlyStatic) == 0,
		LiveOnly:   onlyLive,
		StaticOnly: onlyStatic,
	}, nil
}

// VerifyAll checks every registered template concurrently. Reports come back
// in registry order.
func (e *Engine) VerifyAll(ctx context.Context, state *types.PortfolioState) ([]EquivalenceReport, error) {
	if state == nil {
		return nil, &rendering.RenderError{Message: "nil portfolio state"}
	}
	infos := e.registry.List()
	reports := make([]EquivalenceReport, len(infos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, info := range infos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg, err := e.registry.Get(info.ID)
			if err != nil {
				return err
			}
			// each goroutine reads its own copy
			local := state.Clone()
			report, err := e.CheckEquivalence(cfg, &local)
			if err != nil {
				return fmt.Errorf("template %s: %w", info.ID, err)
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
