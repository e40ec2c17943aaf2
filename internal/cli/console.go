package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/cidroy-tech/create-adonis-starter/internal/scaffold"
)

const logo = `  ____ ___ ____  ____   _____   __
 / ___|_ _|  _ \|  _ \ / _ \ \ / /
| |    | || | | | |_) | | | \ V /
| |___ | || |_| |  _ <| |_| || |
 \____|___|____/|_| \_\\___/ |_|
`

const tagline = "🚀 AdonisJS6 PostgreSQL Starter + Logger Service"

var (
	colorLogo      = color.New(color.FgYellow, color.Bold).SprintFunc()
	colorTagline   = color.New(color.FgHiBlue).SprintFunc()
	colorMuted     = color.New(color.FgHiBlack).SprintFunc()
	colorLabel     = color.New(color.Bold).SprintFunc()
	colorSection   = color.New(color.FgCyan).SprintFunc()
	colorSuccess   = color.New(color.FgGreen).SprintFunc()
	colorCelebrate = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	colorCommand   = color.New(color.FgYellow).SprintFunc()
	colorWarn      = color.New(color.FgHiYellow).SprintFunc()
	colorError     = color.New(color.FgRed).SprintFunc()
)

// palette applies colors only when writing to a terminal.
type palette struct {
	enabled bool
}

func newPalette(w io.Writer) palette {
	return palette{enabled: writerIsTerminal(w)}
}

func (p palette) paint(fn func(...any) string, s string) string {
	if !p.enabled {
		return s
	}
	return fn(s)
}

func (p palette) logo(s string) string      { return p.paint(colorLogo, s) }
func (p palette) tagline(s string) string   { return p.paint(colorTagline, s) }
func (p palette) hint(s string) string      { return p.paint(colorMuted, s) }
func (p palette) label(s string) string     { return p.paint(colorLabel, s) }
func (p palette) section(s string) string   { return p.paint(colorSection, s) }
func (p palette) success(s string) string   { return p.paint(colorSuccess, s) }
func (p palette) celebrate(s string) string { return p.paint(colorCelebrate, s) }
func (p palette) command(s string) string   { return p.paint(colorCommand, s) }
func (p palette) warn(s string) string      { return p.paint(colorWarn, s) }
func (p palette) err(s string) string       { return p.paint(colorError, s) }

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func printBanner(out io.Writer, pal palette) {
	fmt.Fprint(out, pal.logo(logo))
	fmt.Fprintln(out, pal.tagline(tagline))
	fmt.Fprintln(out, pal.hint(strings.Repeat("-", runewidth.StringWidth(tagline))))
	fmt.Fprintln(out)
}

// consoleReporter prints scaffold progress lines.
type consoleReporter struct {
	out io.Writer
	pal palette
}

var _ scaffold.Reporter = (*consoleReporter)(nil)

func (r *consoleReporter) Section(msg string) {
	fmt.Fprintln(r.out, r.pal.section("\n"+msg))
}

func (r *consoleReporter) Success(msg string) {
	fmt.Fprintln(r.out, r.pal.success("✅ "+msg))
}

func (r *consoleReporter) Warn(msg string) {
	fmt.Fprintln(r.out, r.pal.warn("⚠️  "+msg))
}

// printNextSteps draws a box around the follow-up commands. Widths are
// measured in terminal cells so emoji stay aligned.
func printNextSteps(out io.Writer, pal palette, name, packageManager string) {
	type line struct {
		text    string
		command bool
	}
	lines := []line{
		{text: "Next steps:"},
		{text: "  cd " + name, command: true},
		{text: "  " + packageManager + " run dev", command: true},
		{text: ""},
		{text: "Happy coding! ✨"},
	}

	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l.text); w > width {
			width = w
		}
	}

	border := strings.Repeat("─", width+2)
	fmt.Fprintln(out, pal.hint("┌"+border+"┐"))
	for _, l := range lines {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(l.text))
		text := l.text
		if l.command {
			text = pal.command(text)
		}
		fmt.Fprintf(out, "%s %s%s %s\n", pal.hint("│"), text, pad, pal.hint("│"))
	}
	fmt.Fprintln(out, pal.hint("└"+border+"┘"))
}

// Report prints err as the single failure line for the run.
func Report(w io.Writer, err error) {
	pal := newPalette(w)
	if scaffold.IsValidation(err) {
		fmt.Fprintln(w, pal.err("❌ "+err.Error()))
		return
	}
	fmt.Fprintf(w, "%s %v\n", pal.err("❌ Setup failed:"), err)
}
