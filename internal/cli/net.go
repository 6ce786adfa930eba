package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim"
)

// Sticker styles: bold letters in roughly the sticker's color.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	cubesim.Yellow: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	cubesim.Green:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	cubesim.Blue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	cubesim.Red:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	cubesim.Orange: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
}

func sticker(c cubesim.Color) string {
	if style, ok := stickerStyles[c]; ok {
		return style.Render(c.String())
	}
	return c.String()
}

// renderNet draws the cube as a colored 2D net: up on top, then the
// left-front-right-back band, then down.
func renderNet(l *cubesim.Lattice) string {
	var b strings.Builder

	writeRow := func(indent string, faces ...[9]cubesim.Color) {
		for row := 0; row < 3; row++ {
			b.WriteString(indent)
			for _, face := range faces {
				for col := 0; col < 3; col++ {
					b.WriteString(sticker(face[row*3+col]))
					b.WriteString(" ")
				}
			}
			b.WriteString("\n")
		}
	}

	writeRow("      ", l.FaceColors(cubesim.FaceUp))
	writeRow("",
		l.FaceColors(cubesim.FaceLeft),
		l.FaceColors(cubesim.FaceFront),
		l.FaceColors(cubesim.FaceRight),
		l.FaceColors(cubesim.FaceBack),
	)
	writeRow("      ", l.FaceColors(cubesim.FaceDown))

	return b.String()
}
