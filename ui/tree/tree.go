package tree

// Node is one line of a rendered tree.
type Node struct {
	Label string
	// Detail is rendered dimmed after the label.
	Detail string
	// Muted nodes are rendered dimmed entirely, e.g. built-in entries.
	Muted    bool
	Children []*Node
}

// Walk visits nodes depth-first in display order. Top-level nodes get an
// empty prefix and connector.
func Walk(nodes []*Node, fn func(prefix string, connector string, node *Node)) {
	walk(nodes, 0, "", false, fn)
}

func walk(nodes []*Node, depth int, prefix string, endsWithVertical bool, fn func(prefix string, connector string, node *Node)) {
	for i, node := range nodes {
		isLast := i == len(nodes)-1
		var connector string
		if depth > 0 {
			connector = getConnector(isLast)
		}
		fn(prefix, connector, node)
		if len(node.Children) == 0 {
			continue
		}
		childPrefix, vertical := CalculateChildPrefix(prefix, isLast, endsWithVertical)
		walk(node.Children, depth+1, childPrefix, vertical, fn)
	}
}
