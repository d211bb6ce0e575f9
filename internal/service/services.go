// Package service orchestrates the query actions: it resolves dates, builds
// filters, calls the repository and hands typed results to the renderer.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/render"
	"github.com/xolan/timetrace/internal/timeutil"
	"github.com/xolan/timetrace/internal/tree"
)

// Result is what every action returns; it renders as text or semantic JSON.
type Result interface {
	render.Renderable
}

// Response is the generic envelope returned by Execute.
type Response struct {
	OK           bool   `json:"ok"`
	Content      string `json:"content"`
	ErrorMessage string `json:"error_message"`

	err error
}

// Err returns the typed failure behind a non-ok response, or nil.
func (r Response) Err() error {
	return r.err
}

// TreeResponse is the envelope returned by QueryTree.
type TreeResponse struct {
	OK           bool         `json:"ok"`
	Found        bool         `json:"found"`
	Roots        []string     `json:"roots"`
	Nodes        []*tree.Node `json:"nodes"`
	ErrorMessage string       `json:"error_message"`

	err error
}

// Err returns the typed failure behind a non-ok response, or nil.
func (r TreeResponse) Err() error {
	return r.err
}

// Engine answers query actions. It holds no per-call state and is safe to
// share as long as the repository is.
type Engine struct {
	repo     Repository
	settings Settings
	now      timeutil.Clock
	logger   *slog.Logger
}

// NewEngine creates an Engine. A nil clock uses time.Now and a nil logger
// uses slog.Default.
func NewEngine(repo Repository, settings Settings, clock timeutil.Clock, logger *slog.Logger) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		repo:     repo,
		settings: settings,
		now:      clock,
		logger:   logger,
	}
}

// Settings returns the fallbacks the engine was created with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Run dispatches req to the handler of its action.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	e.logger.Debug("dispatching query", "action", req.Action.String())

	var (
		res Result
		err error
	)
	switch req.Action {
	case ActionYears:
		res, err = e.years(ctx, req)
	case ActionMonths:
		res, err = e.months(ctx, req)
	case ActionDays:
		res, err = e.days(ctx, req)
	case ActionDaysDuration:
		res, err = e.daysDuration(ctx, req)
	case ActionDaysStats:
		res, err = e.daysStats(ctx, req)
	case ActionSearch:
		res, err = e.search(ctx, req)
	case ActionActivitySuggest:
		res, err = e.activitySuggest(ctx, req)
	case ActionReportChart:
		res, err = e.reportChart(ctx, req)
	case ActionTree:
		res, err = e.projectTree(ctx, req)
	default:
		err = apperr.Validationf("unknown action %d", int(req.Action))
	}

	if err != nil {
		e.logger.Warn("query failed", "action", req.Action.String(), "kind", apperr.KindOf(err).String(), "error", err)
		return nil, err
	}
	return res, nil
}

// Execute runs req and renders the result in req.OutputMode. If semantic JSON
// rendering fails the text rendering is wrapped under raw_content instead.
func (e *Engine) Execute(ctx context.Context, req Request) Response {
	var (
		res Result
		err error
	)
	if req.Action == ActionMappingNames {
		res, err = e.MappingNames(ctx)
	} else {
		res, err = e.Run(ctx, req)
	}
	if err != nil {
		return Response{ErrorMessage: err.Error(), err: err}
	}

	content, err := render.Render(req.OutputMode, res)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return Response{ErrorMessage: err.Error(), err: err}
		}
		e.logger.Warn("falling back to raw content", "action", res.ActionName(), "error", err)
		content = render.FromContent(res.ActionName(), res.Text())
	}
	return Response{OK: true, Content: content}
}

// QueryTree runs the tree action and returns the nodes without rendering.
func (e *Engine) QueryTree(ctx context.Context, req Request) TreeResponse {
	req.Action = ActionTree
	res, err := e.projectTree(ctx, req)
	if err != nil {
		e.logger.Warn("query failed", "action", ActionTree.String(), "error", err)
		return TreeResponse{ErrorMessage: err.Error(), err: err}
	}
	nodes := res.Roots
	if nodes == nil {
		nodes = []*tree.Node{}
	}
	return TreeResponse{
		OK:    true,
		Found: len(nodes) > 0,
		Roots: tree.RootNames(nodes),
		Nodes: nodes,
	}
}
