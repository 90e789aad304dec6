package format

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	ansiReset = "\x1b[0m"
	ansiError = "\x1b[38;5;196m"
	ansiWarn  = "\x1b[38;5;220m"
	ansiInfo  = "\x1b[38;5;44m"
	ansiDebug = "\x1b[38;5;245m"
	ansiOther = "\x1b[38;5;240m"
)

func colorize(code, text string) string {
	return code + text + ansiReset
}

func levelColor(level string) string {
	switch strings.ToUpper(level) {
	case "ERROR", "FATAL", "CRITICAL":
		return ansiError
	case "WARN", "WARNING":
		return ansiWarn
	case "INFO", "NOTICE":
		return ansiInfo
	case "DEBUG", "TRACE":
		return ansiDebug
	default:
		return ansiOther
	}
}

// ShouldUseColor reports whether out supports ANSI colors.
func ShouldUseColor(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func determineWidth(out *os.File) int {
	if out != nil {
		if w, _, err := term.GetSize(int(out.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if colsStr := os.Getenv("COLUMNS"); colsStr != "" {
		if v, err := strconv.Atoi(colsStr); err == nil && v > 0 {
			return v
		}
	}
	return 80
}
