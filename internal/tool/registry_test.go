package tool

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegisterAndInvoke(t *testing.T) {
	r := NewRegistry()
	err := r.Register(Tool{
		Name: "echo",
		Run: func(_ context.Context, args string) (string, error) {
			return args, nil
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	out, err := r.Invoke(context.Background(), "echo", `{"x":1}`)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if out != `{"x":1}` {
		t.Errorf("out = %q", out)
	}
}

func TestInvokeUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Invoke(context.Background(), "nope", "{}"); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Tool{Name: ""}); err == nil {
		t.Error("nameless tool should be rejected")
	}
	if err := r.Register(Tool{Name: "broken"}); err == nil {
		t.Error("handlerless tool should be rejected")
	}
}

func TestRegisterReplaceKeepsOrder(t *testing.T) {
	r := NewRegistry()
	noop := func(_ context.Context, _ string) (string, error) { return "", nil }
	r.Register(Tool{Name: "a", Run: noop})
	r.Register(Tool{Name: "b", Run: noop})
	r.Register(Tool{Name: "a", Description: "replaced", Run: noop})

	tools := r.Tools()
	if len(tools) != 2 {
		t.Fatalf("Len = %d, want 2", len(tools))
	}
	if tools[0].Name != "a" || tools[0].Description != "replaced" {
		t.Errorf("tools[0] = %+v, want replaced a in first slot", tools[0])
	}
	if tools[1].Name != "b" {
		t.Errorf("tools[1] = %+v", tools[1])
	}
}

func TestBuiltinsReadWriteList(t *testing.T) {
	root := t.TempDir()
	r, err := Builtins(root)
	if err != nil {
		t.Fatalf("Builtins: %v", err)
	}
	ctx := context.Background()

	if _, err := r.Invoke(ctx, "write_file", `{"path":"sub/out.txt","content":"hello"}`); err != nil {
		t.Fatalf("write_file: %v", err)
	}

	got, err := r.Invoke(ctx, "read_file", `{"path":"sub/out.txt"}`)
	if err != nil {
		t.Fatalf("read_file: %v", err)
	}
	if got != "hello" {
		t.Errorf("read back %q, want hello", got)
	}

	listing, err := r.Invoke(ctx, "list_dir", `{}`)
	if err != nil {
		t.Fatalf("list_dir: %v", err)
	}
	if !strings.Contains(listing, "sub/") {
		t.Errorf("listing %q missing sub/", listing)
	}

	data, err := os.ReadFile(filepath.Join(root, "sub", "out.txt"))
	if err != nil || string(data) != "hello" {
		t.Errorf("on-disk content = %q, err %v", data, err)
	}
}

func TestBuiltinsRejectEscape(t *testing.T) {
	r, err := Builtins(t.TempDir())
	if err != nil {
		t.Fatalf("Builtins: %v", err)
	}
	ctx := context.Background()

	for _, args := range []string{
		`{"path":"../outside.txt"}`,
		`{"path":"../../etc/passwd"}`,
		`{}`,
		`not json at all`,
	} {
		if _, err := r.Invoke(ctx, "read_file", args); err == nil {
			t.Errorf("read_file(%s) should fail", args)
		}
	}
}
