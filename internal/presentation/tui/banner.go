package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Furrow banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Soil to leaf gradient
	lines := []struct {
		text  string
		color string
	}{
		{"  ___", "#a16207"},
		{" | __|  _  _ _ _ _ _ _____ __ __", "#ca8a04"},
		{" | _| || | '_| '_/ _ \\ V  V /", "#65a30d"},
		{" |_| \\_,_|_| |_| \\___/\\_/\\_/", "#16a34a"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
