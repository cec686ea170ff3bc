package output

import (
	"io"
	"os"
)

// ResolveColorMode determines whether styled output is enabled from the
// --color flag value ("never", "always", "auto") and actual TTY detection.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether a writer is a terminal.
// Only *os.File values attached to a character device qualify.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// IsInteractive reports whether both stdin and the given writer are
// terminals, which is the precondition for prompting.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(*os.File)
	if !ok {
		return false
	}
	return IsTTY(inFile) && IsTTY(out)
}
