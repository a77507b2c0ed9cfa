package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// MenuChoice is the user's pick from the post-scan menu.
type MenuChoice string

const (
	MenuNewScan MenuChoice = "n"
	MenuModify  MenuChoice = "m"
	MenuQuit    MenuChoice = "q"
)

// PromptUsername asks for the next username to investigate. A read error
// with no input left (closed stdin, exhausted pipe) is returned so the
// caller can stop prompting.
func PromptUsername(w io.Writer, r *bufio.Reader) (string, error) {
	fmt.Fprint(w, labelStyle.Render("Enter a username to investigate: "))
	line, err := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" && err != nil {
		return "", err
	}
	return line, nil
}

// PromptMenu shows the post-scan menu and returns a choice. Unrecognized
// input starts a new scan; EOF quits.
func PromptMenu(w io.Writer, r *bufio.Reader) MenuChoice {
	fmt.Fprint(w, labelStyle.Render("Next? ")+mutedStyle.Render("(n=new scan, m=modify options, q=quit) "))
	line, err := r.ReadString('\n')
	if err != nil {
		return MenuQuit
	}
	switch MenuChoice(strings.ToLower(strings.TrimSpace(line))) {
	case MenuModify:
		return MenuModify
	case MenuQuit:
		return MenuQuit
	default:
		return MenuNewScan
	}
}

// PromptLine asks a free-form question, returning the default on empty input.
func PromptLine(w io.Writer, r *bufio.Reader, question, current string) string {
	fmt.Fprintf(w, "%s %s ", labelStyle.Render(question), mutedStyle.Render("(current: "+current+")"))
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}
