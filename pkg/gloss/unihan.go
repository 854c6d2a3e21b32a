package gloss

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var unihanSplitRe = regexp.MustCompile(`[;,]`)

// LoadUnihan parses Unihan_Readings.txt, keeping kDefinition lines as a
// character→definitions map. Definitions are split on semicolons and commas.
func LoadUnihan(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	unihan := make(map[string][]string)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "\tkDefinition\t") {
			continue
		}
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 3 {
			continue
		}
		cp, err := strconv.ParseInt(strings.TrimPrefix(parts[0], "U+"), 16, 32)
		if err != nil {
			continue
		}
		char := string(rune(cp))
		var defs []string
		for _, d := range unihanSplitRe.Split(parts[2], -1) {
			if d = strings.TrimSpace(d); d != "" {
				defs = append(defs, d)
			}
		}
		if len(defs) > 0 {
			unihan[char] = defs
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return unihan, nil
}
