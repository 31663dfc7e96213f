package sentence

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseResult is the outcome of reading an uploaded sentence file.
type ParseResult struct {
	Bodies  []string
	Skipped int
}

// maxLineBytes bounds a single line of an uploaded document.
const maxLineBytes = 1 << 20

// ParseSentences splits the document into lines and returns the trimmed first
// comma-separated field of each one. Input is UTF-8; a UTF-8 or UTF-16 byte
// order mark selects the matching decoding and is stripped. Blank lines are
// ignored. Lines with an empty first field and lines that are not valid CSV
// are counted as skipped; a malformed line never affects the lines after it.
func ParseSentences(r io.Reader) (ParseResult, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var res ParseResult
	for scanner.Scan() {
		body, ok, err := firstField(scanner.Text())
		if err != nil {
			res.Skipped++
			continue
		}
		if !ok {
			continue
		}
		if body == "" {
			res.Skipped++
			continue
		}
		res.Bodies = append(res.Bodies, body)
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("read line: %w", err)
	}

	return res, nil
}

// firstField parses one line as a CSV record. ok is false for a blank line;
// err is a *csv.ParseError for a malformed one.
func firstField(line string) (body string, ok bool, err error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1

	record, err := reader.Read()
	if errors.Is(err, io.EOF) || (err == nil && len(record) == 0) {
		return "", false, nil
	}
	if err != nil {
		return "", true, err
	}

	return strings.TrimSpace(record[0]), true, nil
}
