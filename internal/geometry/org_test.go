package geometry_test

import (
	"testing"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
)

func TestOrgLevels_BucketsByDepth(t *testing.T) {
	root := domain.Node{
		Name: "CEO",
		Children: []domain.Node{
			{Name: "CTO", Children: []domain.Node{{Name: "Dev A"}, {Name: "Dev B"}}},
			{Name: "CFO", Children: []domain.Node{{Name: "Accountant"}}},
		},
	}

	levels := geometry.OrgLevels(&root)
	if len(levels) != 3 {
		t.Fatalf("got %d levels, want 3", len(levels))
	}

	wantCounts := []int{1, 2, 3}
	total := 0
	for i, level := range levels {
		if len(level) != wantCounts[i] {
			t.Errorf("level %d has %d nodes, want %d", i, len(level), wantCounts[i])
		}
		total += len(level)
	}
	if total != root.Count() {
		t.Errorf("levels hold %d nodes, tree has %d", total, root.Count())
	}

	// Sibling order within a level follows configuration order.
	if levels[1][0].Name != "CTO" || levels[1][1].Name != "CFO" {
		t.Errorf("level 1 order = %q, %q", levels[1][0].Name, levels[1][1].Name)
	}
	if levels[2][0].Name != "Dev A" || levels[2][2].Name != "Accountant" {
		t.Errorf("level 2 not in depth-first order: %q ... %q", levels[2][0].Name, levels[2][2].Name)
	}
}

func TestOrgLevels_SingleNode(t *testing.T) {
	root := domain.Node{Name: "Solo"}
	levels := geometry.OrgLevels(&root)
	if len(levels) != 1 || len(levels[0]) != 1 {
		t.Fatalf("got %d levels, want a single one-node level", len(levels))
	}
}
