package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Builtins returns a registry preloaded with the file tools, rooted
// at root. Paths in arguments are resolved under root and may not
// escape it.
func Builtins(root string) (*Registry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving tool root: %w", err)
	}

	r := NewRegistry()
	must := func(t Tool) {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}

	must(Tool{
		Name:        "read_file",
		Description: "Read a file relative to the workspace root. Arguments: path.",
		Run: func(_ context.Context, args string) (string, error) {
			path, err := rootedPath(absRoot, args)
			if err != nil {
				return "", err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
	})

	must(Tool{
		Name:        "write_file",
		Description: "Write a file relative to the workspace root. Arguments: path, content.",
		Run: func(_ context.Context, args string) (string, error) {
			path, err := rootedPath(absRoot, args)
			if err != nil {
				return "", err
			}
			content := gjson.Get(args, "content").String()
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return "", err
			}
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return "", err
			}
			return fmt.Sprintf("wrote %d bytes", len(content)), nil
		},
	})

	must(Tool{
		Name:        "list_dir",
		Description: "List a directory relative to the workspace root. Arguments: path (optional, defaults to the root).",
		Run: func(_ context.Context, args string) (string, error) {
			path := absRoot
			if gjson.Get(args, "path").Exists() {
				var err error
				path, err = rootedPath(absRoot, args)
				if err != nil {
					return "", err
				}
			}
			entries, err := os.ReadDir(path)
			if err != nil {
				return "", err
			}
			var out strings.Builder
			for _, e := range entries {
				name := e.Name()
				if e.IsDir() {
					name += "/"
				}
				out.WriteString(name)
				out.WriteByte('\n')
			}
			return out.String(), nil
		},
	})

	return r, nil
}

// rootedPath extracts the "path" argument and confines it to root.
func rootedPath(root, args string) (string, error) {
	rel := gjson.Get(args, "path").String()
	if rel == "" {
		return "", fmt.Errorf("missing path argument")
	}
	full := filepath.Join(root, rel)
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the workspace", rel)
	}
	return full, nil
}
