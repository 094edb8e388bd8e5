package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Key Constants ---

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+c")
}

func isEsc(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isClear(msg tea.KeyMsg) bool {
	return isKey(msg, "ctrl+u")
}

func isFill(msg tea.KeyMsg) bool {
	return isKey(msg, "tab")
}

// chipIndex maps alt+1..alt+9 to a zero-based chip index, or -1.
func chipIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if !strings.HasPrefix(s, "alt+") {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "alt+"))
	if err != nil || n < 1 || n > 9 {
		return -1
	}
	return n - 1
}
