package display

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mwynn/careerdeck/internal/util"
)

// DisplayMode tracks what the terminal is currently showing.
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeLoading
	ModeHelp
)

// Frame is one fully-assembled screen to draw.
type Frame struct {
	NavBar   string
	Document []string
	Offset   int
	Mode     DisplayMode
	Message  string // loading text
}

// TerminalDisplay owns the alternate screen buffer and draws frames into
// it. Rendering moves the cursor home and clears to the end of the screen
// instead of wiping the whole buffer on every frame, which keeps redraw
// flicker-free at the UI tick rate.
type TerminalDisplay struct {
	inAlternateScreen bool
	isFirstRender     bool
	currentMode       DisplayMode
}

// NewTerminalDisplay creates a display in normal mode.
func NewTerminalDisplay() *TerminalDisplay {
	return &TerminalDisplay{
		isFirstRender: true,
		currentMode:   ModeNormal,
	}
}

// Size returns the current terminal dimensions, with a conventional
// fallback when stdout is not a terminal.
func (td *TerminalDisplay) Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 80, 24
	}
	return width, height
}

// EnterAlternateScreen switches to the alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Print("\033[?1049h")
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
		fmt.Print(util.ClearScrollback)
		fmt.Print(util.ResetScrollRegion)
		fmt.Print(util.HideCursor)
		td.inAlternateScreen = true
		td.isFirstRender = true
	}
}

// ExitAlternateScreen returns to the normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Print(util.ClearScreen)
		fmt.Print(util.MoveCursorHome)
		fmt.Print(util.ShowCursor)
		fmt.Print("\033[?1049l")
		td.inAlternateScreen = false
	}
}

// Render draws a frame. The nav bar occupies the top row, a separator the
// second, and the viewport shows the document slice starting at
// frame.Offset in the remaining rows.
func (td *TerminalDisplay) Render(frame Frame) {
	if td.isFirstRender || frame.Mode != td.currentMode {
		fmt.Print(util.ClearScreen)
		td.isFirstRender = false
		td.currentMode = frame.Mode
	}
	fmt.Print(util.MoveCursorHome)

	switch frame.Mode {
	case ModeHelp:
		td.renderHelp()
	case ModeLoading:
		td.renderLoading(frame.Message)
	default:
		td.renderDocument(frame)
	}

	fmt.Print(util.ClearToEnd)
}

func (td *TerminalDisplay) renderDocument(frame Frame) {
	width, height := td.Size()
	viewport := height - 2
	if viewport < 1 {
		viewport = 1
	}

	fmt.Println(frame.NavBar + util.ClearLineFromCursor)
	fmt.Println(util.FormatDimText(util.SeparatorLine(width)) + util.ClearLineFromCursor)

	end := frame.Offset + viewport
	if end > len(frame.Document) {
		end = len(frame.Document)
	}
	start := frame.Offset
	if start > end {
		start = end
	}

	for _, line := range frame.Document[start:end] {
		fmt.Println(line + util.ClearLineFromCursor)
	}
}

func (td *TerminalDisplay) renderHelp() {
	fmt.Println(util.FormatSectionTitle("careerdeck - Help"))
	fmt.Println(strings.Repeat("═", 60))
	fmt.Println()
	fmt.Println("Keyboard Shortcuts:")
	fmt.Println()
	fmt.Println("  j/k, arrows   - Scroll line by line")
	fmt.Println("  space/PgDn    - Page down")
	fmt.Println("  PgUp          - Page up")
	fmt.Println("  g / G         - Jump to top / bottom")
	fmt.Println("  1-5           - Jump to a section")
	fmt.Println("  n / p         - Next / previous section")
	fmt.Println("  tab           - Highlight the next card in the section")
	fmt.Println("  enter / e     - Expand or collapse the highlighted card")
	fmt.Println("  P             - Pause/resume screen refresh")
	fmt.Println("  h             - Toggle this help")
	fmt.Println("  q/Esc/Ctrl+C  - Quit")
	fmt.Println()
	fmt.Println(strings.Repeat("═", 60))
	fmt.Println("Press 'h' to return...")
}

func (td *TerminalDisplay) renderLoading(message string) {
	if message == "" {
		message = "Loading data..."
	}
	width, height := td.Size()

	for i := 0; i < height/2-1; i++ {
		fmt.Println()
	}
	fmt.Println(util.CenterText(util.FormatSectionTitle("careerdeck"), width))
	fmt.Println(util.CenterText(message, width))
}
