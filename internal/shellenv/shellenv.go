// Package shellenv reads and extends shell startup files such as ~/.zshenv.
// It understands the subset of shell syntax those files use for variables:
// KEY=value and export KEY=value lines whose value is a single shell word,
// possibly made of several quoted runs.
package shellenv

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads an env-style file and sets any variables not already in the
// environment. Returns nil if the file doesn't exist.
func Load(path string) error {
	vars, err := parseFile(path)
	if err != nil {
		return err
	}
	for _, v := range vars {
		if os.Getenv(v.key) == "" {
			_ = os.Setenv(v.key, v.value)
		}
	}
	return nil
}

// Lookup returns the value of the last assignment to key in the file at path.
// A missing file is not an error; found is false.
func Lookup(path, key string) (value string, found bool, err error) {
	vars, err := parseFile(path)
	if err != nil {
		return "", false, err
	}
	for _, v := range vars {
		if v.key == key {
			value, found = v.value, true
		}
	}
	return value, found, nil
}

// Contains reports whether entry is one of the colon-separated items of any
// assignment to key. Values are compared after shell unquoting, and entries
// are matched as whole items at either end or in the middle of the value, so
// an entry that itself contains a colon is still found.
func Contains(path, key, entry string) (bool, error) {
	if entry == "" || entry == "${"+key+"}" || entry == "$"+key {
		return false, nil
	}
	vars, err := parseFile(path)
	if err != nil {
		return false, err
	}
	for _, v := range vars {
		if v.key == key && hasItem(v.value, entry) {
			return true, nil
		}
	}
	return false, nil
}

func hasItem(value, entry string) bool {
	return value == entry ||
		strings.HasPrefix(value, entry+":") ||
		strings.HasSuffix(value, ":"+entry) ||
		strings.Contains(value, ":"+entry+":")
}

// Line returns the export statement that appends entry to key. The entry is
// single-quoted so sourcing the file never expands or runs anything in it.
func Line(key, entry string) string {
	return fmt.Sprintf(`export %s="${%s}":%s`, key, key, Quote(entry))
}

// Script returns a POSIX sh script that appends Line(key, entry) to file.
func Script(file, key, entry string) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("set -e\n")
	fmt.Fprintf(&b, "printf '%%s\\n' %s >> %s\n", Quote(Line(key, entry)), Quote(file))
	return b.String()
}

// Quote wraps s in single quotes for POSIX sh, escaping embedded single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

type assignment struct {
	key   string
	value string
}

func parseFile(path string) ([]assignment, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only

	var vars []assignment
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		vars = append(vars, assignment{key: key, value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}

// parseLine extracts KEY=VALUE from a line, handling an optional export
// prefix and shell quoting of the value. A value with unbalanced quotes is
// kept as written.
func parseLine(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}

	if decoded, ok := unquote(value); ok {
		value = decoded
	}
	return key, value, true
}

// unquote decodes one shell word following POSIX sh quoting rules. Variable
// references are kept as written, not expanded.
func unquote(word string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(word); i++ {
		switch c := word[i]; c {
		case '\'':
			end := strings.IndexByte(word[i+1:], '\'')
			if end < 0 {
				return "", false
			}
			b.WriteString(word[i+1 : i+1+end])
			i += end + 1
		case '"':
			i++
			for ; i < len(word) && word[i] != '"'; i++ {
				if word[i] == '\\' && i+1 < len(word) && strings.IndexByte("\\\"$`", word[i+1]) >= 0 {
					i++
				}
				b.WriteByte(word[i])
			}
			if i >= len(word) {
				return "", false
			}
		case '\\':
			if i+1 < len(word) {
				i++
				b.WriteByte(word[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), true
}
