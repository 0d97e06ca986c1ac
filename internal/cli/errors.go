package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrNoDirectory is returned when no directory argument is given.
	ErrNoDirectory = errors.New("no directory specified")
	// ErrNotDirectory is returned when the directory argument does not name a directory.
	ErrNotDirectory = errors.New("is not a directory")
)

// PrintError writes err to w as "error: <message>" with a bold red marker.
func PrintError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)

	marker := r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render("error") +
		r.NewStyle().Bold(true).Render(":")

	fmt.Fprintf(w, "%s %v\n", marker, err)
}
