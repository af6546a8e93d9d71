package ui

import "strings"

const logoWord = "PLANNER"

type font struct {
	height  int
	gap     int
	letters map[rune][]string
}

var fontLarge = font{
	height: 6,
	letters: map[rune][]string{
		'P': {
			"██████╗ ",
			"██╔══██╗",
			"██████╔╝",
			"██╔═══╝ ",
			"██║     ",
			"╚═╝     ",
		},
		'L': {
			"██╗     ",
			"██║     ",
			"██║     ",
			"██║     ",
			"███████╗",
			"╚══════╝",
		},
		'A': {
			" █████╗ ",
			"██╔══██╗",
			"███████║",
			"██╔══██║",
			"██║  ██║",
			"╚═╝  ╚═╝",
		},
		'N': {
			"███╗   ██╗",
			"████╗  ██║",
			"██╔██╗ ██║",
			"██║╚██╗██║",
			"██║ ╚████║",
			"╚═╝  ╚═══╝",
		},
		'E': {
			"███████╗",
			"██╔════╝",
			"█████╗  ",
			"██╔══╝  ",
			"███████╗",
			"╚══════╝",
		},
		'R': {
			"██████╗ ",
			"██╔══██╗",
			"██████╔╝",
			"██╔══██╗",
			"██║  ██║",
			"╚═╝  ╚═╝",
		},
	},
}

var fontMedium = font{
	height: 5,
	gap:    1,
	letters: map[rune][]string{
		'P': {
			"████▄",
			"█   █",
			"████▀",
			"█    ",
			"█    ",
		},
		'L': {
			"█    ",
			"█    ",
			"█    ",
			"█    ",
			"█████",
		},
		'A': {
			" ▄█▄ ",
			"█   █",
			"█████",
			"█   █",
			"█   █",
		},
		'N': {
			"█▄  █",
			"█ █ █",
			"█ █ █",
			"█  ▀█",
			"█   █",
		},
		'E': {
			"████▄",
			"█    ",
			"███  ",
			"█    ",
			"████▀",
		},
		'R': {
			"████▄",
			"█   █",
			"████▀",
			"█  █ ",
			"█   █",
		},
	},
}

// width is the display width of word set in f; glyph rows are
// fixed-width so the first row is enough.
func (f font) width(word string) int {
	w := 0
	n := 0
	for _, ch := range word {
		if rows := f.letters[ch]; len(rows) > 0 {
			w += len([]rune(rows[0]))
		}
		n++
	}
	if n > 1 {
		w += f.gap * (n - 1)
	}
	return w
}

func (f font) render(word string) string {
	rows := make([]strings.Builder, f.height)
	gap := strings.Repeat(" ", f.gap)
	for i, ch := range word {
		glyph := f.letters[ch]
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(gap)
			}
			if row < len(glyph) {
				rows[row].WriteString(glyph[row])
			}
		}
	}
	lines := make([]string, f.height)
	for i := range rows {
		lines[i] = " " + rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// renderLogo picks the largest font that fits maxWidth, falling back to
// plain text.
func renderLogo(maxWidth int) string {
	for _, f := range []font{fontLarge, fontMedium} {
		if f.width(logoWord)+1 <= maxWidth {
			return f.render(logoWord)
		}
	}
	return " " + logoWord
}
