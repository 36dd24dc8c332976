package level

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads a comma-separated layout: one row per line, one integer code
// per cell. Blank lines and lines starting with '#' are skipped.
func ParseCSV(name string, r io.Reader, tileSize float64) (*Level, error) {
	rows, err := readCSVCodes(r)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return FromCodes(name, rows, tileSize)
}

func readCSVCodes(r io.Reader) ([][]Code, error) {
	var rows [][]Code
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")
		row := make([]Code, 0, len(fields))
		for i, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				row = append(row, CodeEmpty)
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %q is not an integer", line, i+1, f)
			}
			row = append(row, Code(v))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	return rows, nil
}
