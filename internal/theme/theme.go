// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidesel/internal/logger"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style for name. Missing dotted names fall back to
// their parents ("Tag.name" -> "Tag"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	for key := name; ; {
		if style, ok := t.Styles[key]; ok {
			if key != name {
				logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using '%s'", t.Name, name, key)
			}
			return style
		}
		dot := strings.LastIndexByte(key, '.')
		if dot < 0 {
			break
		}
		key = key[:dot]
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// FizzlerLight mirrors the classic desktop look: blue tag punctuation,
// dark red tag names, red attribute names and a yellow match background.
var FizzlerLight Theme

// DevComfortDark is a muted dark palette.
var DevComfortDark Theme

func init() {
	fzText := tcell.ColorBlack
	fzPaper := tcell.NewRGBColor(255, 255, 225) // Info background
	fzBlue := tcell.ColorBlue
	fzName := tcell.NewRGBColor(163, 21, 21)
	fzRed := tcell.ColorRed
	fzYellow := tcell.ColorYellow
	fzStatus := tcell.NewHexColor(0xd4d0c8)

	fzBase := tcell.StyleDefault.Background(fzPaper).Foreground(fzText)

	FizzlerLight = Theme{
		Name:   "Fizzler Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			"Default":       fzBase,
			"Gutter":        fzBase.Foreground(tcell.ColorGray),
			"Tag":           fzBase.Foreground(fzBlue),
			"Tag.name":      fzBase.Foreground(fzName),
			"Tag.attribute": fzBase.Foreground(fzRed),
			"Match":         tcell.StyleDefault.Background(fzYellow),
			"Match.current": tcell.StyleDefault.Background(tcell.ColorOrange).Underline(true),

			"Selector":         tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(fzText),
			"Selector.error":   tcell.StyleDefault.Background(tcell.NewHexColor(0xffc0c0)).Foreground(fzText),
			"Selector.prompt":  tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(fzBlue).Bold(true),
			"Description":      fzBase.Italic(true),
			"StatusBar":        tcell.StyleDefault.Background(fzStatus).Foreground(fzText),
			"StatusBarError":   tcell.StyleDefault.Background(fzStatus).Foreground(fzRed).Bold(true),
			"StatusBarMessage": tcell.StyleDefault.Background(fzStatus).Foreground(fzText).Bold(true),
		},
	}

	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcOrange := tcell.NewHexColor(0xd19a66)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcRed := tcell.NewHexColor(0xe06c75)
	dcBlue := tcell.NewHexColor(0x61afef)
	dcMatch := tcell.NewHexColor(0x5a4a1e)

	// Use terminal background, DevComfort foreground
	dcBase := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	DevComfortDark = Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":       dcBase,
			"Gutter":        dcBase.Foreground(dcComment),
			"Tag":           dcBase.Foreground(dcBlue),
			"Tag.name":      dcBase.Foreground(dcRed).Bold(true),
			"Tag.attribute": dcBase.Foreground(dcOrange),
			"Match":         tcell.StyleDefault.Background(dcMatch),
			"Match.current": tcell.StyleDefault.Background(dcMatch).Underline(true),

			"Selector":         tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			"Selector.error":   tcell.StyleDefault.Background(tcell.NewHexColor(0x5c2a2e)).Foreground(dcForeground),
			"Selector.prompt":  tcell.StyleDefault.Background(dcBackground).Foreground(dcYellow).Bold(true),
			"Description":      dcBase.Foreground(dcComment).Italic(true),
			"StatusBar":        tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground),
			"StatusBarError":   tcell.StyleDefault.Background(dcBackground).Foreground(dcRed).Bold(true),
			"StatusBarMessage": tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground).Bold(true),
		},
	}
}
