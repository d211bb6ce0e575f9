package service

import (
	"context"
	"strings"
	"testing"

	"github.com/xolan/timetrace/internal/apperr"
)

func TestSearch_RemarkIsLiteral(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionSearch}
	req.Remark = "100%"
	res, err := e.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("search unexpected error: %v", err)
	}
	r := res.(*SearchResult)
	if len(r.Records) != 1 || r.Records[0].Path != "work_deep" {
		t.Fatalf("records = %+v, expected the single work_deep record", r.Records)
	}
	if r.TotalSeconds != 900 {
		t.Errorf("TotalSeconds = %d, expected 900", r.TotalSeconds)
	}
	if !strings.Contains(r.Text(), "100% focus") {
		t.Errorf("text missing remark:\n%s", r.Text())
	}
}

func TestSearch_RootAndLimit(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionSearch}
	req.Root = "study"
	req.Reverse = true
	req.Limit = 1
	res, err := e.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("search unexpected error: %v", err)
	}
	records := res.(*SearchResult).Records
	if len(records) != 1 || records[0].Date != "2026-02-02" {
		t.Errorf("records = %+v, expected latest study record only", records)
	}
}

func TestSearch_RequiresKeyword(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionSearch}
	req.Year = 2026
	_, err := e.Run(context.Background(), req)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("error = %v, expected validation error", err)
	}
}
