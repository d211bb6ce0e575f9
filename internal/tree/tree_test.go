package tree

import (
	"reflect"
	"testing"

	"github.com/xolan/timetrace/internal/model"
)

func sampleRows() []model.PathTotal {
	return []model.PathTotal{
		{Path: "study_math", TotalSeconds: 5400},
		{Path: "study_cs_go", TotalSeconds: 1200},
		{Path: "work_deep", TotalSeconds: 900},
		{Path: "study", TotalSeconds: 1800},
	}
}

func TestBuild_FoldsPrefixes(t *testing.T) {
	roots := Build(sampleRows(), Unlimited)

	if got := RootNames(roots); !reflect.DeepEqual(got, []string{"study", "work"}) {
		t.Fatalf("RootNames = %v, expected [study work]", got)
	}

	study := roots[0]
	if study.DurationSeconds != 8400 {
		t.Errorf("study duration = %d, expected 8400", study.DurationSeconds)
	}
	if len(study.Children) != 2 {
		t.Fatalf("study children = %d, expected 2", len(study.Children))
	}
	if study.Children[0].Name != "cs" || study.Children[1].Name != "math" {
		t.Errorf("children not sorted by name: %s, %s", study.Children[0].Name, study.Children[1].Name)
	}

	goNode := Find(roots, "study_cs_go")
	if goNode == nil {
		t.Fatal("Find(study_cs_go) = nil")
	}
	if goNode.DurationSeconds != 1200 || goNode.Name != "go" {
		t.Errorf("study_cs_go = %+v", goNode)
	}
	if goNode.Children != nil {
		t.Errorf("leaf children = %v, expected nil", goNode.Children)
	}
}

func TestBuild_ParentCoversChildren(t *testing.T) {
	roots := Build(sampleRows(), Unlimited)
	Walk(roots, func(n *Node, _ int) {
		var sum int64
		for _, c := range n.Children {
			sum += c.DurationSeconds
		}
		if sum > n.DurationSeconds {
			t.Errorf("%s: children sum %d exceeds own %d", n.Path, sum, n.DurationSeconds)
		}
	})
}

func TestBuild_DepthPruning(t *testing.T) {
	full := Build(sampleRows(), Unlimited)
	pruned := Build(sampleRows(), 1)

	if len(pruned) != 2 {
		t.Fatalf("pruned roots = %d, expected 2", len(pruned))
	}
	for i, n := range pruned {
		if n.Children != nil {
			t.Errorf("%s has children at depth 1", n.Name)
		}
		if n.DurationSeconds != full[i].DurationSeconds {
			t.Errorf("%s pruned duration = %d, expected %d", n.Name, n.DurationSeconds, full[i].DurationSeconds)
		}
	}

	two := Build(sampleRows(), 2)
	cs := Find(two, "study_cs")
	if cs == nil || cs.DurationSeconds != 1200 || cs.Children != nil {
		t.Errorf("depth 2 study_cs = %+v, expected 1200 with no children", cs)
	}
}

func TestBuild_SkipsEmptySegments(t *testing.T) {
	roots := Build([]model.PathTotal{
		{Path: "_study__math_", TotalSeconds: 60},
		{Path: "", TotalSeconds: 30},
		{Path: "___", TotalSeconds: 30},
	}, Unlimited)

	if len(roots) != 1 {
		t.Fatalf("roots = %d, expected 1", len(roots))
	}
	if roots[0].DurationSeconds != 60 {
		t.Errorf("study duration = %d, expected 60", roots[0].DurationSeconds)
	}
	if Find(roots, "study_math") == nil {
		t.Error("Find(study_math) = nil")
	}
}

func TestBuild_Empty(t *testing.T) {
	if roots := Build(nil, Unlimited); roots != nil {
		t.Errorf("Build(nil) = %v, expected nil", roots)
	}
}

func TestWalk_Depths(t *testing.T) {
	roots := Build(sampleRows(), Unlimited)
	depths := map[string]int{}
	Walk(roots, func(n *Node, depth int) { depths[n.Path] = depth })

	expected := map[string]int{
		"study": 0, "study_cs": 1, "study_cs_go": 2, "study_math": 1,
		"work": 0, "work_deep": 1,
	}
	if !reflect.DeepEqual(depths, expected) {
		t.Errorf("depths = %v, expected %v", depths, expected)
	}
}

func TestFind_Missing(t *testing.T) {
	roots := Build(sampleRows(), Unlimited)
	for _, p := range []string{"nope", "study_physics", "stud"} {
		if n := Find(roots, p); n != nil {
			t.Errorf("Find(%q) = %+v, expected nil", p, n)
		}
	}
}
