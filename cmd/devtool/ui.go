package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// NO_COLOR disables ANSI colours, see https://no-color.org
var useColor = os.Getenv("NO_COLOR") == ""

func printLine(w io.Writer, color, marker, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if useColor {
		fmt.Fprintf(w, "%s%s %s%s\n", color, marker, msg, colorReset)
		return
	}
	fmt.Fprintf(w, "%s %s\n", marker, msg)
}

func PrintInfo(format string, a ...any)    { printLine(os.Stdout, colorBlue, "i", format, a...) }
func PrintSuccess(format string, a ...any) { printLine(os.Stdout, colorGreen, "ok", format, a...) }
func PrintWarning(format string, a ...any) { printLine(os.Stderr, colorYellow, "!", format, a...) }
func PrintError(format string, a ...any)   { printLine(os.Stderr, colorRed, "x", format, a...) }

func PrintHeader(title string) {
	fmt.Println()
	printLine(os.Stdout, colorYellow, "===", "%s ===", title)
}
