package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNoopBeforeInit(t *testing.T) {
	Close()
	Infof(context.Background(), "nothing %d", 1)
	Errorf(context.Background(), "nothing %d", 2)
}

func TestSetOutput(t *testing.T) {
	var info, errs bytes.Buffer
	SetInfoOutput(&info)
	SetErrorOutput(&errs)
	defer Close()

	Infof(context.Background(), "added node %s", "mine")
	Error(context.Background(), "save failed", "network", "Ethereum")

	if !strings.Contains(info.String(), "added node mine") {
		t.Errorf("info log missing message: %q", info.String())
	}
	if !strings.Contains(errs.String(), "network=Ethereum") {
		t.Errorf("error log missing attr: %q", errs.String())
	}
}

func TestInitWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "walletui.log")
	if err := Init(file); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Infof(context.Background(), "hello %s", "file")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file missing message: %q", string(data))
	}
}

func TestJSON(t *testing.T) {
	got := JSON(map[string]int{"a": 1})
	if s, ok := got.(JSONValue); !ok || s.String() != `{"a":1}` {
		t.Errorf("unexpected JSON value: %v", got)
	}
	if JSON(nil) != nil {
		t.Errorf("expected nil for nil input")
	}
}

func TestJSON(t *testing.T) {
	got := JSON(map[string]int{"minutes": 5}).String()
	if got != `{"minutes":5}` {
		t.Errorf("JSON = %s", got)
	}
	if got := JSON(nil).String(); got != "null" {
		t.Errorf("JSON(nil) = %s", got)
	}
	if got := JSON(JSON(1)).String(); got != "1" {
		t.Errorf("nested JSON = %s", got)
	}
}
