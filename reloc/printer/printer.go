// Package printer renders directories and move reports for humans. Output
// formatting only; nothing here participates in the relocation protocol.
package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/relokit/relokit/pkg/types"
	"github.com/relokit/relokit/reloc/directory"
)

// Options controls rendering behavior.
type Options struct {
	// NoColor disables ANSI styling.
	NoColor bool

	// ShowEscapes lists each entry's recorded escape slots under it.
	ShowEscapes bool
}

// Printer renders text output with consistent styling and locale-aware
// number formatting.
type Printer struct {
	opts   Options
	msg    *message.Printer
	header lipgloss.Style
	addr   lipgloss.Style
	dim    lipgloss.Style
}

// New creates a printer.
func New(opts Options) *Printer {
	p := &Printer{
		opts: opts,
		msg:  message.NewPrinter(language.English),
	}
	if opts.NoColor {
		p.header = lipgloss.NewStyle()
		p.addr = lipgloss.NewStyle()
		p.dim = lipgloss.NewStyle()
		return p
	}
	p.header = lipgloss.NewStyle().Bold(true)
	p.addr = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	p.dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return p
}

// Directory writes one line per tracked allocation, ordered by base
// address, with escape slots underneath when ShowEscapes is set.
func (p *Printer) Directory(w io.Writer, d *directory.Directory) error {
	entries := d.Entries()
	if _, err := fmt.Fprintf(w, "%s (%d)\n",
		p.header.Render("Tracked allocations"), len(entries)); err != nil {
		return err
	}
	for _, e := range entries {
		end := e.Base().Add(e.Length())
		_, err := fmt.Fprintf(w, "  %s  %s  %s bytes  %s escape slots\n",
			p.addr.Render(e.Base().String()),
			p.dim.Render(fmt.Sprintf("- %s", end)),
			p.msg.Sprintf("%d", e.Length()),
			p.msg.Sprintf("%d", e.Escapes().Len()))
		if err != nil {
			return err
		}
		if !p.opts.ShowEscapes {
			continue
		}
		for _, slot := range e.Escapes().Addrs() {
			if _, err := fmt.Fprintf(w, "      slot %s\n", p.addr.Render(slot.String())); err != nil {
				return err
			}
		}
	}
	return nil
}

// Report writes a one-block summary of a relocation attempt.
func (p *Printer) Report(w io.Writer, rep types.MoveReport) error {
	_, err := fmt.Fprintf(w, "%s\n  %s -> %s\n  %s bytes moved, %s escape slots and %s registers patched across %s threads in %s\n",
		p.header.Render("Relocation"),
		p.addr.Render(rep.Source.String()),
		p.addr.Render(rep.Target.String()),
		p.msg.Sprintf("%d", rep.Length),
		p.msg.Sprintf("%d", rep.EscapesPatched),
		p.msg.Sprintf("%d", rep.RegistersPatched),
		p.msg.Sprintf("%d", rep.ThreadsVisited),
		rep.Elapsed)
	return err
}
