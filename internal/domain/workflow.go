// Package domain contains the surface comparison engine and the workflow
// around it.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"synver.dev/pkg/synver/internal/adapter"
	"synver.dev/pkg/synver/internal/controller"
	m "synver.dev/pkg/synver/internal/model"
)

// CompareArgs contains the arguments for comparing two artifacts.
type CompareArgs struct {
	Base     m.Path
	Modified m.Path
	// Version overrides the version declared by the base artifact when set.
	Version string
	Load    LoadOptions
	// Report, when set, is where the YAML report is saved.
	Report  m.Path
	Display []controller.DisplayOption
}

// ViewArgs contains the arguments for displaying a saved report.
type ViewArgs struct {
	Report  m.Path
	Display []controller.DisplayOption
}

// Workflow defines the top-level operations of the CLI.
type Workflow interface {
	Compare(ctx context.Context, args CompareArgs) (m.Report, error)
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	Loader
	Comparator
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	loader Loader,
	comparator Comparator,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		Loader:      loader,
		Comparator:  comparator,
		ReportStore: reportStore,
		UI:          ui,
	}
}

func (w *workflow) Compare(ctx context.Context, args CompareArgs) (m.Report, error) {
	var base, modified m.Artifact

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		artifact, err := w.Load(groupCtx, args.Base, args.Load)
		if err != nil {
			return fmt.Errorf("load base: %w", err)
		}

		base = artifact

		return nil
	})

	group.Go(func() error {
		artifact, err := w.Load(groupCtx, args.Modified, args.Load)
		if err != nil {
			return fmt.Errorf("load modified: %w", err)
		}

		modified = artifact

		return nil
	})

	if err := group.Wait(); err != nil {
		return m.Report{}, err
	}

	from, err := ResolveVersion(args.Version, base)
	if err != nil {
		slog.Error("Failed to resolve starting version", "explicit", args.Version,
			"declared", base.DeclaredVersion, "error", err)

		return m.Report{}, fmt.Errorf("resolve version: %w", err)
	}

	report, err := w.Comparator.Compare(base, modified, from)
	if err != nil {
		return m.Report{}, fmt.Errorf("compare: %w", err)
	}

	if err := w.DisplayReport(ctx, report, args.Display...); err != nil {
		return report, fmt.Errorf("display report: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	return report, nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.DisplayReport(ctx, report, args.Display...); err != nil {
		return fmt.Errorf("display report: %w", err)
	}

	return nil
}
