package main

import (
	"context"
	"errors"
	"testing"

	"github.com/utkarsh5026/fanout/nested"
)

func TestRunGet_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantKey error
	}{
		{"missing key", []string{"-json", `{"a": 1, "b": 2}`, "a", "b", "c"}, nested.ErrKeyNotFound},
		{"missing top-level key", []string{"-json", `{}`, "a"}, nested.ErrKeyNotFound},
		{"invalid json", []string{"-json", `{`, "a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runGet(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantKey != nil && !errors.Is(err, tt.wantKey) {
				t.Errorf("expected %v, got %v", tt.wantKey, err)
			}
		})
	}
}

func TestRunWait_UnknownCollector(t *testing.T) {
	err := runWait(context.Background(), []string{"-n", "1", "-max", "0", "-collector", "bogus"})
	if err == nil {
		t.Fatal("expected an error for an unknown collector")
	}
}

func TestRunGet_Success(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nested value", []string{"-json", `{"a": {"b": 2}}`, "a", "b"}},
		{"intermediate mapping", []string{"-json", `{"a": {"b": 2}}`, "a"}},
		{"whole document", []string{"-json", `{"a": 1}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runGet(context.Background(), tt.args); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRunWait_Success(t *testing.T) {
	for _, collector := range []string{"pool", "futures"} {
		t.Run(collector, func(t *testing.T) {
			err := runWait(context.Background(), []string{"-n", "3", "-max", "0", "-collector", collector, "-seed", "7"})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
