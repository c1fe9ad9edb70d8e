package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	white  = color.New(color.FgWhite).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.FgHiWhite, color.Bold).SprintFunc()
)

const logo = ` ____   ___  ____  _____ _____ _____  _
|  _ \ / _ \/ ___|| ____|_   _|_   _|/ \
| |_) | | | \___ \|  _|   | |   | | / _ \
|  _ <| |_| |___) | |___  | |   | |/ ___ \
|_| \_\\___/|____/|_____| |_|   |_/_/   \_\`

// one scanner for all prompts so buffered input is not lost between reads
var stdin = bufio.NewScanner(os.Stdin)

func Banner() {
	fmt.Println()
	for _, line := range strings.Split(logo, "\n") {
		fmt.Println(bold(line))
	}
	fmt.Println()
	fmt.Println(gray("Translate .xcstrings catalogs with AI"))
	fmt.Println()
}

func Header(message string) {
	fmt.Println()
	fmt.Println(bold(message))
	fmt.Println()
}

func Step(message string) {
	fmt.Printf("• %s\n", white(message))
}

func Substep(message string) {
	fmt.Printf("  □ %s\n", gray(message))
}

func Success(message string) {
	fmt.Printf("✓ %s\n", green(message))
}

func Warning(message string) {
	fmt.Printf("! %s\n", yellow(message))
}

func Error(message string) {
	fmt.Printf("✗ %s\n", red(message))
}

func Info(label, value string) {
	fmt.Printf("  %s: %s\n", gray(label), white(value))
}

func Highlight(s string) string { return cyan(s) }

func Dim(s string) string { return gray(s) }

func Bold(s string) string { return bold(s) }

func ClearScreen() {
	fmt.Print("\033[2J\033[H")
}

func readLine() (string, error) {
	if !stdin.Scan() {
		if err := stdin.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input received")
	}
	return strings.TrimSpace(stdin.Text()), nil
}

// Ask prompts for one line of input.
func Ask(label string) (string, error) {
	fmt.Printf("%s: ", label)
	return readLine()
}

// AskDefault prompts for one line of input, returning def on empty input.
func AskDefault(label, def string) (string, error) {
	fmt.Printf("%s [%s]: ", label, def)
	line, err := readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// AskSecret prompts without echoing, for API keys. Falls back to a
// plain read when stdin is not a terminal.
func AskSecret(label string) (string, error) {
	fmt.Printf("%s: ", label)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return readLine()
	}
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}

// Confirm asks a yes/no question, returning def on empty input.
func Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Printf("%s [%s]: ", label, hint)
		line, err := readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// Select shows a numbered menu and returns the chosen index. Accepts
// the number or the literal option text; empty input picks def.
func Select(label string, options []string, def int) (int, error) {
	fmt.Println()
	for i, option := range options {
		marker := " "
		if i == def {
			marker = ">"
		}
		fmt.Printf("%s %d. %s\n", gray(marker), i+1, option)
	}
	for {
		fmt.Printf("%s [%d]: ", label, def+1)
		line, err := readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		for i, option := range options {
			if strings.EqualFold(line, option) {
				return i, nil
			}
		}
	}
}

// NewProgressBar builds the bar used for batch translation runs.
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", description)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
