package service

import (
	"context"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/tree"
)

func (e *Engine) projectTree(ctx context.Context, req Request) (*TreeResult, error) {
	depth, err := e.treeDepth(req.MaxDepth)
	if err != nil {
		return nil, err
	}

	f, start, end, err := e.resolvePeriod(req, req.Filter)
	if err != nil {
		return nil, err
	}
	f.Limit = 0
	f.Reverse = false
	if f, err = f.Normalize(); err != nil {
		return nil, err
	}
	if start == "" && f.From != "" && f.To != "" {
		start, end = f.From, f.To
	}

	rows, err := e.repo.ProjectPaths(ctx, f)
	if err != nil {
		return nil, err
	}

	return &TreeResult{
		Start:    start,
		End:      end,
		MaxDepth: depth,
		Roots:    tree.Build(rows, depth),
	}, nil
}

// treeDepth resolves the requested depth: 0 takes the configured default,
// -1 is unlimited and anything below is rejected.
func (e *Engine) treeDepth(requested int) (int, error) {
	depth := requested
	if depth == 0 {
		depth = e.settings.TreeMaxDepth
	}
	switch {
	case depth < tree.Unlimited:
		return 0, apperr.Validationf("invalid max depth %d: use -1 for unlimited or a positive depth", requested)
	case depth == 0:
		return tree.Unlimited, nil
	default:
		return depth, nil
	}
}

// MappingNames lists every current project with its full path. It sits
// outside the action switch and is reached directly or through Execute.
func (e *Engine) MappingNames(ctx context.Context) (*MappingResult, error) {
	mappings, err := e.repo.ProjectMappings(ctx)
	if err != nil {
		return nil, err
	}
	return &MappingResult{Mappings: mappings}, nil
}

// RootNames lists the live root project names, sorted.
func (e *Engine) RootNames(ctx context.Context) ([]string, error) {
	return e.repo.RootNames(ctx)
}
