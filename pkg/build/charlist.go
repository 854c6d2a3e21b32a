package build

import (
	"bufio"
	"os"
	"strings"
)

// LoadCharList reads an extra-characters file: one character per line,
// optionally followed by a tab and whitespace-separated tags. Comment lines
// start with #.
func LoadCharList(path string) ([]CharSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var specs []CharSpec
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimPrefix(scanner.Text(), "\ufeff")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(strings.TrimSpace(line), "\t", 2)
		spec := CharSpec{Char: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			spec.Tags = strings.TrimSpace(parts[1])
		}
		if spec.Char != "" {
			specs = append(specs, spec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}
