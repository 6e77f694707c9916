package component

import "testing"

func TestFormNavigationAndChoice(t *testing.T) {
	form := &Form{
		Fields: []*Field{
			{Label: "Name"},
			{Label: "Network", Options: []string{"Ethereum", "Sepolia", "Polygon"}},
		},
	}
	form.HandleKey("m")
	form.HandleKey("e")
	if got := form.Value(0); got != "me" {
		t.Fatalf("expected 'me', got %q", got)
	}

	form.HandleKey("tab")
	if form.Focus != 1 {
		t.Fatalf("expected focus on field 1, got %d", form.Focus)
	}
	if form.HandleKey("x") {
		t.Errorf("choice fields should ignore typed text")
	}
	form.HandleKey("left")
	if got := form.Value(1); got != "Polygon" {
		t.Errorf("expected wrap to Polygon, got %q", got)
	}
	form.HandleKey("right")
	if got := form.Value(1); got != "Ethereum" {
		t.Errorf("expected Ethereum, got %q", got)
	}

	form.HandleKey("tab")
	if form.Focus != 0 {
		t.Errorf("expected focus to wrap to 0, got %d", form.Focus)
	}
	if form.HandleKey("enter") {
		t.Errorf("enter should be left to the owner")
	}
	if form.Value(5) != "" {
		t.Errorf("out of range value should be empty")
	}
}

func TestFieldSelect(t *testing.T) {
	f := &Field{Options: []string{"a", "b"}}
	f.Select("b")
	if f.Value() != "b" {
		t.Errorf("expected b, got %q", f.Value())
	}
	f.Select("missing")
	if f.Value() != "b" {
		t.Errorf("unknown option should keep selection")
	}
}
