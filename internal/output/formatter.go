// Package output formats requests, responses and errors for the terminal.
package output

import (
	"fmt"
	"sort"
	"strings"
)

// Formatter renders CLI output in text format
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !isTerminal() {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		scheme:  scheme,
	}
}

// FormatRequest formats the outgoing request line, with headers when verbose
func (f *Formatter) FormatRequest(url string, headers map[string]string) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ GET %s\n", f.scheme.URL.Sprint(url)))

	if f.Verbose && len(headers) > 0 {
		names := make([]string, 0, len(headers))
		for name := range headers {
			names = append(names, name)
		}
		sort.Strings(names)

		buf.WriteString("  Headers:\n")
		for _, name := range names {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(name),
				f.scheme.HeaderValue.Sprint(headers[name])))
		}
	}

	return buf.String()
}

// FormatBody formats the response body for display
func (f *Formatter) FormatBody(body string) string {
	if body == "" {
		return ""
	}
	if strings.HasSuffix(body, "\n") {
		return body
	}
	return body + "\n"
}

// FormatError formats an error for stderr
func (f *Formatter) FormatError(err error) string {
	return fmt.Sprintf("%s %v\n", f.scheme.Error.Sprint("✗"), err)
}
