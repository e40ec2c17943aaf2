package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// promptProjectName reads one line from in. EOF before a newline yields
// whatever was typed, possibly nothing.
func promptProjectName(in io.Reader, out io.Writer, pal palette) (string, error) {
	fmt.Fprintf(out, "%s %s ", pal.label("? Project name:"), pal.hint("(e.g. "+defaultProjectName+")"))

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(out)
	}
	return strings.TrimSpace(line), nil
}
