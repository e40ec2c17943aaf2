package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/cidroy-tech/create-adonis-starter/internal/scaffold"
)

func TestPrintNextStepsBoxIsAligned(t *testing.T) {
	var out bytes.Buffer
	printNextSteps(&out, palette{}, "my-app", "npm")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	want := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		if got := runewidth.StringWidth(line); got != want {
			t.Fatalf("line %d width = %d, want %d: %q", i, got, want, line)
		}
	}
	for _, s := range []string{"cd my-app", "npm run dev", "Happy coding!"} {
		if !strings.Contains(out.String(), s) {
			t.Fatalf("missing %q in:\n%s", s, out.String())
		}
	}
}

func TestReport(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation",
			err:  &scaffold.ValidationError{Err: scaffold.ErrNameRequired},
			want: "❌ project name required\n",
		},
		{
			name: "existing directory",
			err:  &scaffold.ValidationError{Name: "my-app", Err: scaffold.ErrTargetExists},
			want: "❌ directory \"my-app\" already exists\n",
		},
		{
			name: "process failure",
			err:  &scaffold.ExternalProcessError{Step: "install", Err: errors.New("npm install failed: exit status 1")},
			want: "❌ Setup failed: install: npm install failed: exit status 1\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			Report(&out, tc.err)
			if out.String() != tc.want {
				t.Fatalf("Report = %q, want %q", out.String(), tc.want)
			}
		})
	}
}
