package tree

import (
	"strings"
	"testing"
)

func renderPlain(nodes []*Node) string {
	var b strings.Builder
	Walk(nodes, func(prefix string, connector string, node *Node) {
		b.WriteString(prefix + connector + RenderItem(node, false) + "\n")
	})
	return b.String()
}

func TestWalkConnectors(t *testing.T) {
	nodes := []*Node{
		{
			Label: "Ethereum",
			Children: []*Node{
				{Label: "publicnode", Muted: true},
				{
					Label: "local",
					Children: []*Node{
						{Label: "auth", Detail: "user"},
					},
				},
			},
		},
		{
			Label: "Sepolia",
			Children: []*Node{
				{Label: "a", Children: []*Node{{Label: "b"}}},
				{Label: "c"},
			},
		},
	}

	want := strings.Join([]string{
		"• Ethereum",
		"  ├─◦ publicnode",
		"  └─• local",
		"    └─• auth  user",
		"• Sepolia",
		"  ├─• a",
		"  │ └─• b",
		"  └─• c",
	}, "\n") + "\n"

	if got := renderPlain(nodes); got != want {
		t.Errorf("unexpected tree:\n%s\nwant:\n%s", got, want)
	}
}

func TestCalculateChildPrefix(t *testing.T) {
	tests := []struct {
		prefix   string
		isLast   bool
		vertical bool
		want     string
		wantVert bool
	}{
		{"", false, false, "  ", false},
		{"  ", false, false, "  │ ", true},
		{"  ", true, false, "    ", false},
		{"  │ ", true, true, "  │     ", false},
	}
	for _, tt := range tests {
		got, vert := CalculateChildPrefix(tt.prefix, tt.isLast, tt.vertical)
		if got != tt.want || vert != tt.wantVert {
			t.Errorf("CalculateChildPrefix(%q, %v, %v) = %q, %v; want %q, %v", tt.prefix, tt.isLast, tt.vertical, got, vert, tt.want, tt.wantVert)
		}
	}
}

func TestRenderItemTTY(t *testing.T) {
	node := &Node{Label: "Accounts", Children: []*Node{{Label: "x"}}}
	if got := RenderItem(node, false); got != "• Accounts" {
		t.Errorf("unexpected plain render %q", got)
	}
	if got := RenderItem(node, true); !strings.Contains(got, "Accounts") {
		t.Errorf("styled render lost label: %q", got)
	}
}
