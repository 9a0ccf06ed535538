package geometry

import (
	"fmt"

	"github.com/mgk2100/ppt-generator/internal/domain"
)

// TreeLines renders a directory-style listing of the given nodes, one line
// per node, in the manner of the tree command. The first top-level node is
// the root (package icon, no connector); every other node gets a tee or
// elbow connector, a folder icon when it has children and a file icon
// otherwise. Output is deterministic: the same input always yields the same
// lines.
func TreeLines(items []domain.Node) []string {
	var lines []string
	buildTreeLines(items, &lines, "", true)
	return lines
}

func buildTreeLines(items []domain.Node, lines *[]string, prefix string, isRoot bool) {
	for i := range items {
		item := &items[i]
		isLast := i == len(items)-1

		var childPrefix string
		if isRoot && i == 0 && prefix == "" {
			*lines = append(*lines, fmt.Sprintf("📦 %s/", item.Name))
			childPrefix = "   "
		} else {
			connector := "├── "
			if isLast {
				connector = "└── "
			}
			icon, suffix := "📄", ""
			if len(item.Children) > 0 {
				icon, suffix = "📁", "/"
			}
			*lines = append(*lines, fmt.Sprintf("%s%s%s %s%s", prefix, connector, icon, item.Name, suffix))
			if isLast {
				childPrefix = prefix + "    "
			} else {
				childPrefix = prefix + "│   "
			}
		}

		if len(item.Children) > 0 {
			buildTreeLines(item.Children, lines, childPrefix, false)
		}
	}
}

// NodeDescription pairs a node name with its description for the side panel.
type NodeDescription struct {
	Name string
	Text string
}

// ExtractDescriptions collects node descriptions depth-first, keeping the
// first description seen for each name.
func ExtractDescriptions(items []domain.Node, seed []NodeDescription) []NodeDescription {
	out := append([]NodeDescription(nil), seed...)
	seen := make(map[string]bool, len(out))
	for _, d := range out {
		seen[d.Name] = true
	}
	var walk func(items []domain.Node)
	walk = func(items []domain.Node) {
		for i := range items {
			item := &items[i]
			if item.Name != "" && item.Description != "" && !seen[item.Name] {
				out = append(out, NodeDescription{Name: item.Name, Text: item.Description})
				seen[item.Name] = true
			}
			if len(item.Children) > 0 {
				walk(item.Children)
			}
		}
	}
	walk(items)
	return out
}
