package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/idelchi/lrgest/internal/lrgest"
	"github.com/idelchi/lrgest/internal/volume"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// Palette styles table output.
type Palette struct {
	// Path styles the quoted entry path.
	Path lipgloss.Style
	// Warning styles gigabyte sizes.
	Warning lipgloss.Style
	// Danger styles terabyte sizes.
	Danger lipgloss.Style
}

// NewPalette creates the table styles for renderer r.
// Colors are dropped automatically when r's output is not a terminal.
func NewPalette(r *lipgloss.Renderer) Palette {
	return Palette{
		Path:    r.NewStyle().Bold(true),
		Warning: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")), // bright yellow
		Danger:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),  // bright red
	}
}

// Size renders a size with the emphasis its unit calls for.
func (p Palette) Size(s lrgest.Size) string {
	switch s.Emphasis() {
	case lrgest.Warning:
		return p.Warning.Render(s.String())
	case lrgest.Danger:
		return p.Danger.Render(s.String())
	default:
		return s.String()
	}
}

// Entry is one ranked entry in JSON output.
type Entry struct {
	// Rank is the 1-based position by size, largest first.
	Rank uint64 `json:"rank"`
	// Path is the file or directory path.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size uint64 `json:"size"`
	// Human is the size scaled to a unit, e.g. "4.77MB".
	Human string `json:"human"`
}

// Report is the JSON output document.
type Report struct {
	// Directory is the analyzed directory.
	Directory string `json:"directory"`
	// Policy describes the selected ranks.
	Policy string `json:"policy"`
	// Window is the enumerator line range that was requested.
	Window lrgest.LineWindow `json:"window"`
	// Entries are ordered by descending rank.
	Entries []Entry `json:"entries"`
	// Volume is the usage of the filesystem holding Directory, if known.
	Volume *volume.Status `json:"volume,omitempty"`
}

// NewReport builds the JSON document for a run.
func NewReport(dir string, policy lrgest.Policy, ranked []lrgest.Ranked, status *volume.Status) Report {
	entries := make([]Entry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, Entry{
			Rank:  r.Rank,
			Path:  r.Path,
			Size:  r.Size,
			Human: lrgest.HumanSize(r.Size).String(),
		})
	}

	return Report{
		Directory: dir,
		Policy:    policy.String(),
		Window:    policy.Window(),
		Entries:   entries,
		Volume:    status,
	}
}

// PrintJSON outputs the report in JSON format.
func PrintJSON(report Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs one `rank) "path": size` line per entry, in the given order.
func PrintTable(ranked []lrgest.Ranked, writer io.Writer, palette Palette) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	for _, r := range ranked {
		fmt.Fprintf(w, "%d) %s:\t%s\n",
			r.Rank, palette.Path.Render(`"`+r.Path+`"`), palette.Size(lrgest.HumanSize(r.Size)))
	}

	return w.Flush()
}
