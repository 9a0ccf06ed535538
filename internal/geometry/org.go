package geometry

import "github.com/mgk2100/ppt-generator/internal/domain"

// OrgLevels assigns every node of the organization tree to a per-depth
// bucket, depth-first so sibling order within a level is preserved. A tree of
// depth D yields exactly D buckets and every node appears in exactly one.
func OrgLevels(root *domain.Node) [][]*domain.Node {
	var levels [][]*domain.Node
	var traverse func(n *domain.Node, depth int)
	traverse = func(n *domain.Node, depth int) {
		for len(levels) <= depth {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n)
		for i := range n.Children {
			traverse(&n.Children[i], depth+1)
		}
	}
	traverse(root, 0)
	return levels
}
