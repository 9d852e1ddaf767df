package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/term"
)

var errAborted = errors.New("aborted")

// readPassword is a seam so tests can bypass the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prompts for a single line and trims it.
func GetSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prompts without echoing input.
func GetPassword(prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	b, err := readPassword(0)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetMultiline reads lines until a single "." line.
func GetMultiline(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Printf("%s (finish with a single '.'): \n", prompt)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// GetConfirmation prompts for a y/N answer, defaulting to no.
func GetConfirmation(reader *bufio.Reader, prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Seams matching the prompt helpers above, substituted in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getMultiline    = GetMultiline
	getConfirmation = GetConfirmation
)
