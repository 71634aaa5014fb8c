// Package render prints the request summary and the response.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkgquery/internal/client"
	"pkgquery/internal/query"
)

const separator = "========================================"

// Printer writes styled sections to a single writer. Styling degrades to
// plain text when the writer is not a terminal.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#8be9fd")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#ffb86c")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#6272a4")),
	}
}

// Banner prints the program heading.
func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.title.Render("API REQUEST TOOL"))
	fmt.Fprintln(p.w, p.muted.Render("==============="))
}

// Separator prints the section divider.
func (p *Printer) Separator() {
	fmt.Fprintf(p.w, "\n%s\n\n", p.muted.Render(separator))
}

// Error prints a user-facing error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "\n%s\n", p.warning.Render("Error: "+msg))
}

// Line prints msg on its own line.
func (p *Printer) Line(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Summary prints the assembled request for review.
func (p *Printer) Summary(req client.Request, sel query.Selections, insecure bool) {
	p.heading("REQUEST SUMMARY")
	p.field("Method", req.Method)
	p.field("URL", req.URL)

	fmt.Fprintf(p.w, "\n%s\n", p.label.Render("Headers:"))
	for _, h := range req.Headers {
		p.field(h.Name, h.Value)
	}

	names := make([]string, 0, len(sel.Platforms))
	for _, pl := range query.SortPlatforms(sel.Platforms) {
		names = append(names, string(pl))
	}
	fmt.Fprintln(p.w)
	p.field("Selected Platforms", strings.Join(names, ", "))
	if sel.ConfigType != query.ConfigTypeNone {
		p.field("Config Type", string(sel.ConfigType))
	}
	if sel.SearchPackage != "" {
		p.field("Search Package", sel.SearchPackage)
	}

	if insecure {
		fmt.Fprintf(p.w, "\n%s\n", p.warning.Render("TLS verification: disabled"))
	}
}

// Response prints the status line and the formatted body.
func (p *Printer) Response(resp *client.Response) {
	p.heading("RESPONSE DETAILS")
	p.field("Status", resp.Status)

	fmt.Fprintf(p.w, "\n%s\n", p.label.Render("Response Body:"))
	fmt.Fprintln(p.w, FormatBody(resp.Body))
}

func (p *Printer) heading(text string) {
	fmt.Fprintln(p.w, p.title.Render(text))
	fmt.Fprintln(p.w, p.muted.Render(strings.Repeat("-", len(text)+1)))
}

func (p *Printer) field(name, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.label.Render(name+":"), value)
}

// FormatBody pretty-prints body when it is a single JSON value and returns
// it unchanged otherwise. Object keys come out sorted; numbers keep their
// original text.
func FormatBody(body []byte) string {
	formatted, err := formatJSON(body)
	if err != nil {
		return string(body)
	}
	return formatted
}

// formatJSON pretty-prints JSON
func formatJSON(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var parsed interface{}
	if err := dec.Decode(&parsed); err != nil {
		return "", err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", errors.New("trailing data after JSON value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(parsed); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
