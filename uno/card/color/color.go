package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	Wild Color = iota
	Red
	Blue
	Green
	Yellow
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Wild: {
		name:          "Wild",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
	Red: {
		name:          "Red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Blue: {
		name:          "Blue",
		colorFunction: color.New(color.FgHiBlue).SprintfFunc(),
	},
	Green: {
		name:          "Green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Yellow: {
		name:          "Yellow",
		colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
	},
}

// Chromatics lists the playable colors in menu order.
var Chromatics = []Color{Red, Blue, Green, Yellow}

var Stdout io.Writer = color.Output

func (c Color) Chromatic() bool {
	return c >= Red && c <= Yellow
}

func (c Color) Name() string {
	if s, ok := palette[c]; ok {
		return s.name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	s, ok := palette[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return s.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// ByIndex maps a 1-based menu choice to a chromatic color.
func ByIndex(index int) (Color, error) {
	if index < 1 || index > len(Chromatics) {
		return Wild, fmt.Errorf("invalid color choice %d", index)
	}
	return Chromatics[index-1], nil
}

func ByName(name string) (Color, error) {
	for _, c := range Chromatics {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return Wild, fmt.Errorf("invalid color '%s'", name)
}
