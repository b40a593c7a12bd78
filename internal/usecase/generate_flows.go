package usecase

import (
	"context"
	"path/filepath"
	"time"

	"github.com/aalvaropc/flowmap/internal/app/report"
	"github.com/aalvaropc/flowmap/internal/domain"
	"github.com/aalvaropc/flowmap/internal/ports"
	"github.com/aalvaropc/flowmap/internal/usecase/extract"
)

// ProgressFunc receives one printf-style message per pipeline stage.
type ProgressFunc func(format string, args ...any)

type GenerateFlows struct {
	source   ports.DocumentSource
	store    ports.FlowStore
	now      func() time.Time
	progress ProgressFunc
}

type GenerateOption func(*GenerateFlows)

// WithNow is useful for tests.
func WithNow(now func() time.Time) GenerateOption {
	return func(uc *GenerateFlows) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithProgress reports pipeline stages as they complete, e.g. to the
// console.
func WithProgress(p ProgressFunc) GenerateOption {
	return func(uc *GenerateFlows) {
		if p != nil {
			uc.progress = p
		}
	}
}

func NewGenerateFlows(src ports.DocumentSource, store ports.FlowStore, opts ...GenerateOption) *GenerateFlows {
	uc := &GenerateFlows{
		source:   src,
		store:    store,
		now:      time.Now,
		progress: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the whole pipeline for one project: load both documents,
// extract screens, stories, and flows, assemble the report, and persist
// it. Extraction results are threaded through as values; nothing is
// shared between stages. Empty extraction results are valid and still
// produce a document.
func (uc *GenerateFlows) Execute(ctx context.Context, ref domain.ProjectRef) (domain.FlowSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.FlowSummary{}, err
	}

	docs, err := uc.source.LoadDocuments(ref)
	if err != nil {
		return domain.FlowSummary{}, err
	}
	uc.progress("Read %s and %s", filepath.Base(ref.RequirementsPath), filepath.Base(ref.DesignPath))

	screens := extract.Screens(docs.Requirements)
	stories := extract.Stories(docs.Requirements)
	flows := extract.Navigation(docs.Design)

	// Flow endpoints join the screen set so extracted edges always
	// render in the diagram and matrix, even when the requirements
	// text never names the screen directly.
	mergeFlowEndpoints(screens, flows)
	uc.progress("Extracted %d screens, %d stories, %d flows", screens.Len(), len(stories), len(flows))

	if err := ctx.Err(); err != nil {
		return domain.FlowSummary{}, err
	}

	rep := report.Report{
		Project:     ref.Name,
		Screens:     screens,
		Stories:     stories,
		Flows:       flows,
		GeneratedAt: uc.now(),
	}

	path, err := uc.store.SaveFlows(ref, rep.Render())
	if err != nil {
		return domain.FlowSummary{}, err
	}
	uc.progress("Wrote %s", path)

	return domain.FlowSummary{
		Project:    ref.Name,
		Screens:    screens.Len(),
		Stories:    len(stories),
		Flows:      len(flows),
		OutputPath: path,
	}, nil
}

// mergeFlowEndpoints appends each flow's endpoints to the screen set in
// flow order, after the requirements-derived screens.
func mergeFlowEndpoints(screens *domain.ScreenSet, flows []domain.NavigationFlow) {
	for _, f := range flows {
		screens.Add(f.From)
		screens.Add(f.To)
	}
}
