// Package ui renders expressor's console output: colored status lines,
// the startup banner and progress spinners.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
)

// Banner is the figlet title printed by the root and new commands.
const Banner = "TS Express App"

var (
	cyan     = color.New(color.FgHiCyan)
	italic   = color.New(color.FgHiCyan, color.Italic)
	green    = color.New(color.FgHiGreen)
	red      = color.New(color.FgHiRed)
	yellow   = color.New(color.FgHiYellow)
	bold     = color.New(color.Bold)
	errorTag = color.New(color.BgRed, color.FgWhite)
)

// Printer writes user-facing output. It is safe for concurrent use.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPrinter creates a printer writing to out, or stdout when out is nil.
func NewPrinter(out io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}

	return &Printer{out: out}
}

func (p *Printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, s)
}

// Log prints message in cyan after an uncolored prefix.
func (p *Printer) Log(message string, prefix ...string) {
	p.println(strings.Join(prefix, "") + cyan.Sprint(message))
}

// Success prints message in green.
func (p *Printer) Success(message string) {
	p.println(green.Sprint(message))
}

// ErrorLog prints message in red.
func (p *Printer) ErrorLog(message string) {
	p.println(red.Sprint(message))
}

// Hint prints a follow-up suggestion.
func (p *Printer) Hint(message string) {
	p.println(yellow.Sprint("  → " + message))
}

// Notice prints message behind a red ERROR tag. It is used for outcomes
// that stop a command without failing it.
func (p *Printer) Notice(message string) {
	p.println(errorTag.Sprint("ERROR") + " " + message)
}

// Command prints a bold label followed by a command to run.
func (p *Printer) Command(label, command string) {
	p.println(bold.Sprint(label) + italic.Sprint(command))
}

// Banner prints text as figlet art.
func (p *Printer) Banner(text string) {
	fig := figure.NewFigure(text, "", true)
	p.Log(strings.TrimRight(fig.String(), "\n"))
}

// Spinner shows progress for one step of a longer pipeline.
type Spinner struct {
	printer *Printer
	spin    *spinner.Spinner
	message string
}

// Spinner starts a spinner with message. It only animates on a terminal;
// the final status line is always printed.
func (p *Printer) Spinner(message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(p.out))
	s.Suffix = " " + message
	s.Start()

	return &Spinner{printer: p, spin: s, message: message}
}

// Succeed stops the spinner and marks the step done.
func (s *Spinner) Succeed() {
	s.spin.Stop()
	s.printer.println(green.Sprint("✔") + " " + s.message)
}

// Fail stops the spinner and marks the step failed.
func (s *Spinner) Fail() {
	s.spin.Stop()
	s.printer.println(red.Sprint("✖") + " " + s.message)
}
