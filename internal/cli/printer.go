package cli

import (
	"fmt"
	"io"
)

// Printer is the output collaborator of the console session: plain-text
// lines tagged by severity. The core never depends on a terminal.
type Printer interface {
	Info(msg string)
	Verbose(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

const (
	ansiReset  = "\x1b[0m"
	ansiGray   = "\x1b[90m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// ANSIPrinter writes severity-colored lines. Verbose lines are dropped
// unless enabled.
type ANSIPrinter struct {
	W           io.Writer
	ShowVerbose bool
}

func (p *ANSIPrinter) Info(msg string) {
	fmt.Fprintln(p.W, msg)
}

func (p *ANSIPrinter) Verbose(msg string) {
	if !p.ShowVerbose {
		return
	}

	fmt.Fprintln(p.W, ansiGray+msg+ansiReset)
}

func (p *ANSIPrinter) Success(msg string) {
	fmt.Fprintln(p.W, ansiGreen+msg+ansiReset)
}

func (p *ANSIPrinter) Warning(msg string) {
	fmt.Fprintln(p.W, ansiYellow+msg+ansiReset)
}

func (p *ANSIPrinter) Error(msg string) {
	fmt.Fprintln(p.W, ansiRed+msg+ansiReset)
}
