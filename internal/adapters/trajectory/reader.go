package trajectory

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mkret/seihrd/internal/domain/status"
)

// Read parses a trajectory log back into day rows. Every line must hold the
// same number of valid status integers.
func Read(path string) ([][]status.Status, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenLog, err)
	}
	defer f.Close()

	var rows [][]status.Status
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d entries, expected %d",
				ErrMalformedLog, line, len(fields), len(rows[0]))
		}

		row := make([]status.Status, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d entry %d: %v", ErrMalformedLog, line, i, err)
			}
			s := status.Status(v)
			if !s.Valid() {
				return nil, fmt.Errorf("%w: line %d entry %d: unknown status %d", ErrMalformedLog, line, i, v)
			}
			row[i] = s
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLog, err)
	}

	return rows, nil
}
