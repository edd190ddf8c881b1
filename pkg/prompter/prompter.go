package prompter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptPassword prompts user for a password (hidden input)
func PromptPassword(label string) (string, error) {
	fmt.Print(label)

	bytepw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}

	fmt.Println() // New line after password input

	return string(bytepw), nil
}

// PromptConfirm prompts user for yes/no confirmation
func PromptConfirm(label string) (bool, error) {
	fmt.Print(label + " (y/n) ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response := strings.TrimSpace(strings.ToLower(input))
	return response == "y" || response == "yes", nil
}

// PromptSelect prompts user to select from options
func PromptSelect(label string, options []string) (int, error) {
	fmt.Println(label)
	for i, opt := range options {
		fmt.Printf("%d) %s\n", i+1, opt)
	}

	fmt.Print("Select option: ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return -1, err
	}

	input = strings.TrimSpace(input)

	var selection int
	_, err = fmt.Sscanf(input, "%d", &selection)
	if err != nil {
		return -1, err
	}

	if selection < 1 || selection > len(options) {
		return -1, fmt.Errorf("invalid selection")
	}

	return selection - 1, nil
}

// PromptMultiSelect prompts user to select one or more options by number,
// comma-separated (e.g. "1,3"). Returns the chosen indexes, deduplicated.
func PromptMultiSelect(label string, options []string) ([]int, error) {
	fmt.Println(label)
	for i, opt := range options {
		fmt.Printf("%d) %s\n", i+1, opt)
	}

	fmt.Print("Select options (comma-separated): ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}

	return parseSelections(input, len(options))
}

// parseSelections turns "1,3" into zero-based indexes, deduplicated
func parseSelections(input string, optionCount int) ([]int, error) {
	seen := make(map[int]bool)
	var selections []int
	for _, part := range strings.Split(strings.TrimSpace(input), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var selection int
		if _, err := fmt.Sscanf(part, "%d", &selection); err != nil {
			return nil, fmt.Errorf("invalid selection: %s", part)
		}
		if selection < 1 || selection > optionCount {
			return nil, fmt.Errorf("invalid selection: %d", selection)
		}
		if !seen[selection] {
			seen[selection] = true
			selections = append(selections, selection-1)
		}
	}

	return selections, nil
}
