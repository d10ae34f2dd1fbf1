package report

import (
	"fmt"
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
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// DisplayInfoMessage prints an informational message to the user.  This
// displays regardless of log level: it is used for direct output such as the
// version command.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Printf("%s: ", reprPath)
	ErrorColorFG.Print("error")
	fmt.Printf(": %s\n\n", err)
}

// displayCompileError displays a compilation error.  The label printed before
// the message names the error family: eg. `syntax error`.
func displayCompileError(reprPath, src string, cerr *CompileError) {
	if cerr.Span == nil {
		fmt.Printf("%s: ", reprPath)
		ErrorColorFG.Printf("%s error", KindLabel(cerr.Kind))
		fmt.Printf(": %s\n\n", cerr.Message)
		return
	}

	fmt.Printf("%s:%d:%d: ", reprPath, cerr.Span.StartLine+1, cerr.Span.StartCol+1)
	ErrorColorFG.Printf("%s error", KindLabel(cerr.Kind))
	fmt.Printf(": %s\n\n", cerr.Message)

	if src != "" {
		displaySourceText(src, cerr.Span)
	}
}

// displaySourceText displays the segment of source text defined by a text
// span, underlined with carets.
func displaySourceText(src string, span *TextSpan) {
	// Collect all the source lines containing the given source text.
	var lines []string
	for ln, line := range strings.Split(src, "\n") {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(line, "\t", "    "))
		}
	}

	if len(lines) == 0 {
		return
	}

	// Generate the format string for line numbers from the maximum line
	// number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		fmt.Printf(lineNumFmtStr, i+span.StartLine+1)
		fmt.Println(line)

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// The carets skip up to the start column on the first line and
		// continue to the end column on the last line.
		caretStart := 0
		if i == 0 {
			caretStart = span.StartCol
		}

		caretEnd := len(line)
		if i == len(lines)-1 {
			caretEnd = span.EndCol
		}

		if caretEnd <= caretStart {
			caretEnd = caretStart + 1
		}

		fmt.Print(strings.Repeat(" ", caretStart))
		ErrorColorFG.Println(strings.Repeat("^", caretEnd-caretStart))
	}

	fmt.Println()
}
