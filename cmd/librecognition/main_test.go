package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func exportedSymbols(t *testing.T) map[string]bool {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "main.go", nil, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse main.go: %v", err)
	}
	symbols := make(map[string]bool)
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			if name, ok := strings.CutPrefix(c.Text, "//export "); ok {
				symbols[strings.TrimSpace(name)] = true
			}
		}
	}
	return symbols
}

func TestExports(t *testing.T) {
	symbols := exportedSymbols(t)

	tests := []string{
		"recognizer_factory_create",
		"recognizer_enable",
		"recognizer_disable",
		"recognizer_is_enabled",
		"recognizer_recognize_async",
		"recognizer_start_continuous",
		"recognizer_stop_continuous",
		"recognizer_release",
		"result_release",
		"async_wait_for",
		"async_poll",
		"recognition_last_error",
		"recognition_free_string",
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			if !symbols[name] {
				t.Errorf("%s is not exported", name)
			}
		})
	}

	if symbols["recognition_factory_create"] {
		t.Error("recognition_factory_create is still exported")
	}
}
