package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI applications.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI applications.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// colorOutput reports whether DecorateText emits ANSI escape sequences.
// The commands switch it off when stderr is not a terminal.
var colorOutput = true

// SetColorOutput enables or disables the ANSI decoration of the console messages.
func SetColorOutput(enabled bool) {
	colorOutput = enabled
}

// ColorOutput returns true if the console messages are decorated with colors.
func ColorOutput() bool {
	return colorOutput
}

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	if !colorOutput {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// ErrorText joins a failure message and its cause, decorated for the console.
// The cause is never interpreted as a format string.
func ErrorText(msg string, err error) string {
	return DecorateText(msg+": ", ErrorMessage) + DecorateText(err.Error(), DefaultMessage)
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh %dm %.2fs",
		int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
}
