package tuitest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}
