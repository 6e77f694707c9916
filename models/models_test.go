package models

import "testing"

func TestInputStateEditing(t *testing.T) {
	var in InputState
	in.Insert("nde")
	in.MoveCursor(-2)
	in.Insert("o")
	if in.Value != "node" {
		t.Fatalf("expected 'node', got %q", in.Value)
	}
	if in.CursorPosition != 2 {
		t.Fatalf("expected cursor 2, got %d", in.CursorPosition)
	}
	in.MoveCursor(100)
	in.Backspace()
	if in.Value != "nod" {
		t.Fatalf("expected 'nod', got %q", in.Value)
	}
	in.Reset()
	in.Backspace()
	if in.Value != "" || in.CursorPosition != 0 {
		t.Fatalf("expected empty input, got %q at %d", in.Value, in.CursorPosition)
	}
}

func TestCustomNodeConfigClone(t *testing.T) {
	node := &CustomNodeConfig{Name: "mine", Auth: &NodeAuth{Username: "u"}}
	clone := node.Clone()
	clone.Auth.Username = "changed"
	if node.Auth.Username != "u" {
		t.Errorf("clone shares auth with original")
	}
	var nilNode *CustomNodeConfig
	if nilNode.Clone() != nil {
		t.Errorf("expected nil clone of nil node")
	}
}

func TestNetworkNodeByName(t *testing.T) {
	network := &Network{
		ID: "Ethereum",
		Nodes: []*CustomNodeConfig{
			{Name: "default", Network: "Ethereum"},
			{Name: "mine", Network: "Ethereum", IsCustom: true},
		},
	}
	if network.NodeByName("mine") == nil {
		t.Errorf("expected to find node 'mine'")
	}
	if network.NodeByName("missing") != nil {
		t.Errorf("expected nil for missing node")
	}
	if got := len(network.CustomNodes()); got != 1 {
		t.Errorf("expected 1 custom node, got %d", got)
	}
}
