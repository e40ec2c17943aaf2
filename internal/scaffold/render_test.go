package scaffold

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDatabaseName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"my-app", "my_app"},
		{"MyApp", "myapp"},
		{"already_ok_123", "already_ok_123"},
		{"with space.and.dots", "with_space_and_dots"},
		{"Ünïcode", "_n_code"},
		{"__", "__"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := DatabaseName(tc.in)
			if got != tc.want {
				t.Fatalf("DatabaseName(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if again := DatabaseName(got); again != got {
				t.Fatalf("DatabaseName not idempotent: %q -> %q", got, again)
			}
			for _, r := range got {
				if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
					t.Fatalf("DatabaseName(%q) contains %q", tc.in, r)
				}
			}
		})
	}
}

func TestRenderEnv(t *testing.T) {
	const content = "DB_DATABASE=your_project_name\n# your_project_name appears twice\nOTHER=value\n"
	got := RenderEnv(content, "your_project_name", "my_app")
	want := "DB_DATABASE=my_app\n# my_app appears twice\nOTHER=value\n"
	if got != want {
		t.Fatalf("RenderEnv = %q, want %q", got, want)
	}
	if n := strings.Count(got, "your_project_name"); n != 0 {
		t.Fatalf("%d placeholders left", n)
	}
	if RenderEnv(content, "", "x") != content {
		t.Fatal("empty placeholder should leave content unchanged")
	}
}

func TestRewriteManifestPreservesOrder(t *testing.T) {
	in := []byte(`{"version":"1.0.0","name":"starter","scripts":{"dev":"node ace serve"},"imports":{"#app/*":"./app/*.js"},"empty":{}}`)
	got, err := RewriteManifest(in, "my-app")
	if err != nil {
		t.Fatalf("RewriteManifest returned error: %v", err)
	}
	want := `{
  "version": "1.0.0",
  "name": "my-app",
  "scripts": {
    "dev": "node ace serve"
  },
  "imports": {
    "#app/*": "./app/*.js"
  },
  "empty": {}
}
`
	if string(got) != want {
		t.Fatalf("RewriteManifest =\n%s\nwant\n%s", got, want)
	}
}

func TestRewriteManifestAppendsMissingName(t *testing.T) {
	got, err := RewriteManifest([]byte(`{"private": true}`), "<weird & name>")
	if err != nil {
		t.Fatalf("RewriteManifest returned error: %v", err)
	}
	want := "{\n  \"private\": true,\n  \"name\": \"<weird & name>\"\n}\n"
	if string(got) != want {
		t.Fatalf("RewriteManifest = %q, want %q", got, want)
	}
}

func TestRewriteManifestRawName(t *testing.T) {
	got, err := RewriteManifest([]byte(`{"name":"x"}`), "My App!")
	if err != nil {
		t.Fatal(err)
	}
	var pkg map[string]string
	if err := json.Unmarshal(got, &pkg); err != nil {
		t.Fatal(err)
	}
	if pkg["name"] != "My App!" {
		t.Fatalf("name = %q, want raw input", pkg["name"])
	}
}

func TestRewriteManifestErrors(t *testing.T) {
	cases := map[string]string{
		"truncated":  `{"name": "x",`,
		"array root": `["name"]`,
		"trailing":   `{"name": "x"} {"name": "y"}`,
		"empty":      ``,
		"garbage":    `not json`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := RewriteManifest([]byte(in), "my-app"); err == nil {
				t.Fatalf("RewriteManifest(%q) succeeded, want error", in)
			}
		})
	}
}
