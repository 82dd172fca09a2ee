package presentation

import "fmt"

// DialogueLayout selects where the match dialogue box is drawn
type DialogueLayout int

const (
	// LayoutFloating draws the line as a bubble next to the portrait
	LayoutFloating DialogueLayout = iota
	// LayoutFixed draws a full-width box under the playfield
	LayoutFixed
)

func ParseLayout(s string) (DialogueLayout, error) {
	switch s {
	case "floating", "":
		return LayoutFloating, nil
	case "fixed":
		return LayoutFixed, nil
	}
	return LayoutFloating, fmt.Errorf("unknown dialogue layout %q", s)
}

func (d DialogueLayout) String() string {
	if d == LayoutFixed {
		return "fixed"
	}
	return "floating"
}

// Options are the presentation settings fixed at startup
type Options struct {
	Language Language
	Layout   DialogueLayout
	AssetDir string
}
