package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = pterm.FgLightCyan
	InfoStyleBG    = pterm.NewStyle(pterm.BgLightCyan, pterm.FgBlack)
)

// InitColor disables colored output if f is not a terminal.
func InitColor(f *os.File) {
	if !IsTerminal(f.Fd()) {
		pterm.DisableColor()
	}
}

// -----------------------------------------------------------------------------

const icePostlude = "This error was not supposed to happen: please open an issue on the compiler's issue tracker."

func displayICE(message string) string {
	return fmt.Sprintf("%s %s\n%s\n\n",
		ErrorStyleBG.Sprint(" internal compiler error "),
		ErrorColorFG.Sprint(message),
		InfoColorFG.Sprint(icePostlude),
	)
}

func displayFatal(message string) string {
	return fmt.Sprintf("%s %s\n\n", ErrorStyleBG.Sprint(" fatal error "), ErrorColorFG.Sprint(message))
}

func displayStdError(reprPath string, err error) string {
	return fmt.Sprintf("%s: %s %s\n\n", reprPath, ErrorStyleBG.Sprint(" error "), ErrorColorFG.Sprint(err))
}

func displayInfo(tag, message string) string {
	return fmt.Sprintf("%s %s\n", InfoStyleBG.Sprint(" "+tag+" "), message)
}

// displayFinished produces the summary displayed after all files are checked.
func displayFinished(errorCount, warningCount int) string {
	sb := &strings.Builder{}
	sb.WriteString("\n")

	if errorCount == 0 {
		sb.WriteString(SuccessColorFG.Sprint("All done! "))
	} else {
		sb.WriteString(ErrorColorFG.Sprint("Oh no! "))
	}

	sb.WriteString("(")

	switch errorCount {
	case 0:
		sb.WriteString(SuccessColorFG.Sprint(0) + " errors, ")
	case 1:
		sb.WriteString(ErrorColorFG.Sprint(1) + " error, ")
	default:
		sb.WriteString(ErrorColorFG.Sprint(errorCount) + " errors, ")
	}

	switch warningCount {
	case 0:
		sb.WriteString(SuccessColorFG.Sprint(0) + " warnings)\n")
	case 1:
		sb.WriteString(WarnColorFG.Sprint(1) + " warning)\n")
	default:
		sb.WriteString(WarnColorFG.Sprint(warningCount) + " warnings)\n")
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

// displayDiagnostic displays a diagnostic: a banner naming its kind and file,
// the message, and then the source text of the primary span and every label.
// The source file may be nil.
func displayDiagnostic(sb *strings.Builder, src *SourceFile, diag *Diagnostic) {
	var tagStyle *pterm.Style
	var caretColor pterm.Color
	switch diag.Kind {
	case KindError:
		tagStyle, caretColor = ErrorStyleBG, ErrorColorFG
	case KindWarning:
		tagStyle, caretColor = WarnStyleBG, WarnColorFG
	default:
		tagStyle, caretColor = InfoStyleBG, InfoColorFG
	}

	tag := diag.Tag()
	if diag.Code != "" {
		tag += "[" + string(diag.Code) + "]"
	}

	fileName := "<input>"
	if src != nil {
		fileName = filepath.Base(src.ReprPath)
	}

	// banner
	bannerLen := min(pterm.GetTerminalWidth()/2, 50)
	dashCount := max(bannerLen-len(fileName)-len(tag)-2, 3)
	sb.WriteString("-- ")
	sb.WriteString(tagStyle.Sprint(" " + tag + " "))
	sb.WriteString(" " + strings.Repeat("-", dashCount) + " ")
	sb.WriteString(InfoColorFG.Sprint(fileName))
	sb.WriteString("\n")

	// message with position
	if src != nil {
		line, col := src.Position(diag.Span.Start)
		fmt.Fprintf(sb, "%s:%d:%d: %s\n", src.ReprPath, line+1, col+1, diag.Message)
	} else {
		sb.WriteString(diag.Message + "\n")
	}

	if src != nil && len(src.Text) > 0 {
		sb.WriteString("\n")
		displaySourceText(sb, src, diag.Span, caretColor, "")

		for _, label := range diag.Labels {
			displaySourceText(sb, src, label.Span, InfoColorFG, label.Caption)
		}
	} else {
		for _, label := range diag.Labels {
			fmt.Fprintf(sb, "  %s: %s\n", label.Span, label.Caption)
		}
	}

	sb.WriteString("\n")
}

// displaySourceText displays a segment of source text defined by a span with
// line numbers and carret underlining.  If caption is not empty, it is printed
// after the carrets of the last line.  Spans outside of the file are clamped.
func displaySourceText(sb *strings.Builder, src *SourceFile, span Span, carretColor pterm.Color, caption string) {
	start, end := span.clamp(len(src.Text))
	startLine, startCol := src.Position(start)
	endLine, endCol := src.Position(end)

	// a span ending right after a line break ends on the previous line
	if endLine > startLine && endCol == 0 {
		endLine--
		line, _ := src.Line(endLine)
		endCol = len(line)
	}

	// Collect all the source lines containing the given source text.
	var lines []string
	for n := startLine; n <= endLine; n++ {
		line, ok := src.Line(n)
		if !ok {
			break
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation ignoring blank lines.
	minIndent := math.MaxInt
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		trimmed := strings.TrimLeft(line, " \t")
		minIndent = min(minIndent, visualWidth(line[:len(line)-len(trimmed)]))
	}

	if minIndent == math.MaxInt {
		minIndent = 0
	}

	// Generate the format string for line numbers.
	maxLineNumLen := len(strconv.Itoa(endLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		expanded := strings.ReplaceAll(line, "\t", "    ")

		sb.WriteString(InfoColorFG.Sprint(fmt.Sprintf(lineNumFmtStr, startLine+i+1)))
		if len(expanded) >= minIndent {
			sb.WriteString(expanded[minIndent:])
		}
		sb.WriteString("\n")

		// Underlining starts at the start column on the first line and at the
		// beginning of the line on every other line.  It stops at the end
		// column on the last line.
		carretStart, carretEnd := 0, len(expanded)-minIndent
		if i == 0 {
			carretStart = visualWidth(line[:min(startCol, len(line))]) - minIndent
		}

		if i == len(lines)-1 {
			carretEnd = visualWidth(line[:min(endCol, len(line))]) - minIndent
		}

		carretStart = max(carretStart, 0)
		carretEnd = max(carretEnd, carretStart+1)

		sb.WriteString(strings.Repeat(" ", maxLineNumLen) + " | " + strings.Repeat(" ", carretStart))
		sb.WriteString(carretColor.Sprint(strings.Repeat("^", carretEnd-carretStart)))

		if i == len(lines)-1 && caption != "" {
			sb.WriteString(" " + carretColor.Sprint(caption))
		}

		sb.WriteString("\n")
	}
}

// visualWidth returns the display width of s with tabs expanded to four spaces.
func visualWidth(s string) int {
	return len(s) + 3*strings.Count(s, "\t")
}
