package manifest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParsePack reads a pack file and returns its selections in file order.
// Blank lines and lines starting with '#' are skipped. Malformed lines are
// not fatal: they are reported in the returned warnings and skipped, so a
// single bad entry never sinks the whole pack.
func ParsePack(r io.Reader) ([]Selection, []string, error) {
	var (
		selections []Selection
		warnings   []string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			warnings = append(warnings, fmt.Sprintf("invalid pack line: %q", line))
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot parse %q as number", strings.TrimSpace(value)))
			continue
		}

		selections = append(selections, Selection{
			Username: strings.TrimSpace(name),
			Index:    index,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading pack file: %w", err)
	}

	return selections, warnings, nil
}

// ParsePackFile opens and parses a pack file from disk.
func ParsePackFile(path string) ([]Selection, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening pack file %s: %w", path, err)
	}
	defer f.Close()
	return ParsePack(f)
}

// ParseContributor reads and decodes a contributor's me.json.
func ParseContributor(path string) (*Contributor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading contributor metadata %s: %w", path, err)
	}

	var c Contributor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing contributor metadata %s: %w", path, err)
	}

	return &c, nil
}
