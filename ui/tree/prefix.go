package tree

// CalculateChildPrefix calculates the prefix for child nodes based on the
// parent's prefix and position. Returns (prefix, hasVerticalLine).
func CalculateChildPrefix(parentPrefix string, parentIsLast bool, parentEndsWithVertical bool) (string, bool) {
	if parentPrefix == "" {
		return "  ", false
	}

	if parentIsLast {
		if parentEndsWithVertical {
			return parentPrefix + "    ", false
		}
		return parentPrefix + "  ", false
	}
	return parentPrefix + "│ ", true
}

func getConnector(isLast bool) string {
	if isLast {
		return "└─"
	}
	return "├─"
}
