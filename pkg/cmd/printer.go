package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/world"
)

const (
	noDisplayName = "No display name available"
	noDescription = "No description available"
)

// Printer prints packs, one per line:
//
//	Back to Blocks (VanillaTweaks.BackToBlocks) v.1.0.3
//		Allows you to craft certain items back to their original blocks.
type Printer struct {
	w       io.Writer
	compact bool
	display lipgloss.Style
	id      lipgloss.Style
}

// NewPrinter creates a printer writing to 'w'.
// A compact printer omits the descriptions, 'colour' colours the display names and ids.
func NewPrinter(w io.Writer, compact, colour bool) *Printer {
	renderer := lipgloss.NewRenderer(w)
	if colour {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:       w,
		compact: compact,
		display: renderer.NewStyle().Foreground(lipgloss.Color("4")),
		id:      renderer.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// PrintPacks prints all packs of 'packs' in order.
func (p *Printer) PrintPacks(packs *pack.PackSet) {
	for _, pk := range packs.Packs() {
		p.print(pk.Id, pk.DisplayName, pk.Version, pk.Description)
	}
}

func (p *Printer) PrintInstalled(installed world.InstalledPack) {
	p.print(installed.Id, installed.DisplayName, installed.Version, installed.Description)
}

func (p *Printer) print(id, displayName, version, description string) {
	if displayName == "" {
		displayName = noDisplayName
	}
	if description == "" {
		description = noDescription
	}

	fmt.Fprintf(p.w, "%s (%s) v.%s\n", p.display.Render(displayName), p.id.Render(id), version)
	if !p.compact {
		fmt.Fprintf(p.w, "\t%s\n", description)
	}
}
