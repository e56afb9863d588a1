package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Record is one data row of a table with its source line number.
type Record struct {
	Line  int
	Cells []string
}

// LineError is a row the CSV reader could not parse.
type LineError struct {
	Line int
	Err  error
}

// Table is a decoded input file.
type Table struct {
	Headers   []string
	Rows      []Record
	Malformed []LineError
	Encoding  string
	Delimiter rune
	Format    string
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
	zipMagic   = []byte("PK\x03\x04")
)

// eightBitFallbacks are tried, in order, when the input is not valid UTF-8.
// ISO-8859-1 maps every byte and therefore always succeeds.
var eightBitFallbacks = []struct {
	name string
	enc  encoding.Encoding
}{
	{"windows-1252", charmap.Windows1252},
	{"iso-8859-1", charmap.ISO8859_1},
}

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// ReadTable decodes raw file bytes into a table. Spreadsheets are recognised by
// their zip signature when allowSpreadsheets is set; everything else is read as
// delimited text.
func ReadTable(data []byte, mode ReadMode, allowSpreadsheets bool) (*Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnreadable)
	}
	if bytes.HasPrefix(data, zipMagic) {
		if !allowSpreadsheets {
			return nil, fmt.Errorf("%w: spreadsheet input is not accepted for this import", ErrUnreadable)
		}
		return readSpreadsheet(data)
	}

	text, enc, err := decodeText(data, mode)
	if err != nil {
		return nil, err
	}

	delim := ','
	if mode == ReadLenient {
		delim = SniffDelimiter(text)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.LazyQuotes = mode == ReadLenient

	t := &Table{Encoding: enc, Delimiter: delim, Format: "csv"}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
			}
			if t.Headers == nil {
				return nil, fmt.Errorf("%w: header row: %v", ErrUnreadable, err)
			}
			t.Malformed = append(t.Malformed, LineError{Line: pe.StartLine, Err: err})
			continue
		}
		if blank(rec) {
			continue
		}
		line, _ := r.FieldPos(0)
		if t.Headers == nil {
			t.Headers = rec
			continue
		}
		t.Rows = append(t.Rows, Record{Line: line, Cells: rec})
	}
	if t.Headers == nil {
		return nil, fmt.Errorf("%w: no header row", ErrUnreadable)
	}
	return t, nil
}

// decodeText converts data to a UTF-8 string, returning the name of the
// encoding that worked.
func decodeText(data []byte, mode ReadMode) (string, string, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		data = data[len(utf8BOM):]
		if utf8.Valid(data) {
			return string(data), "utf-8", nil
		}
	}

	if bytes.HasPrefix(data, utf16LEBOM) || bytes.HasPrefix(data, utf16BEBOM) {
		if mode != ReadLenient {
			return "", "", fmt.Errorf("%w: UTF-16 input requires lenient reading", ErrUnreadable)
		}
		text, err := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), data)
		if err != nil {
			return "", "", fmt.Errorf("%w: utf-16: %v", ErrUnreadable, err)
		}
		return text, "utf-16", nil
	}

	if mode == ReadLenient {
		if endian, ok := guessUTF16(data); ok {
			if text, err := decodeWith(unicode.UTF16(endian, unicode.IgnoreBOM), data); err == nil {
				return text, "utf-16", nil
			}
		}
	}

	if utf8.Valid(data) && bytes.IndexByte(data, 0) < 0 {
		return string(data), "utf-8", nil
	}

	for _, fb := range eightBitFallbacks {
		text, err := decodeWith(fb.enc, data)
		if err != nil || strings.ContainsRune(text, utf8.RuneError) || strings.ContainsRune(text, 0) {
			continue
		}
		return text, fb.name, nil
	}
	return "", "", fmt.Errorf("%w: could not decode file with any supported encoding", ErrUnreadable)
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// guessUTF16 spots BOM-less UTF-16 by the zero bytes ASCII text leaves in
// every other position.
func guessUTF16(data []byte) (unicode.Endianness, bool) {
	n := min(len(data), 512) &^ 1
	if n < 4 {
		return unicode.LittleEndian, false
	}
	var evenZeros, oddZeros int
	for i := 0; i < n; i += 2 {
		if data[i] == 0 {
			evenZeros++
		}
		if data[i+1] == 0 {
			oddZeros++
		}
	}
	pairs := n / 2
	switch {
	case oddZeros*10 >= pairs*3 && evenZeros*10 < pairs:
		return unicode.LittleEndian, true
	case evenZeros*10 >= pairs*3 && oddZeros*10 < pairs:
		return unicode.BigEndian, true
	}
	return unicode.LittleEndian, false
}

// SniffDelimiter picks the delimiter whose per-line count is most consistent
// over the first lines of text. Comma wins when nothing else stands out.
func SniffDelimiter(text string) rune {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
		if len(lines) == 10 {
			break
		}
	}
	if len(lines) == 0 {
		return ','
	}

	best, bestScore, bestWidth := ',', -1, 0
	for _, c := range delimiterCandidates {
		width := countOutsideQuotes(lines[0], c)
		if width == 0 {
			continue
		}
		score := 0
		for _, l := range lines {
			if countOutsideQuotes(l, c) == width {
				score++
			}
		}
		if score > bestScore || (score == bestScore && width > bestWidth) {
			best, bestScore, bestWidth = c, score, width
		}
	}
	return best
}

func countOutsideQuotes(line string, delim rune) int {
	n := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delim && !quoted:
			n++
		}
	}
	return n
}

func readSpreadsheet(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: spreadsheet: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: spreadsheet has no sheets", ErrUnreadable)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrUnreadable, sheets[0], err)
	}

	t := &Table{Encoding: "xlsx", Format: "xlsx"}
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if t.Headers == nil {
			t.Headers = row
			continue
		}
		t.Rows = append(t.Rows, Record{Line: i + 1, Cells: row})
	}
	if t.Headers == nil {
		return nil, fmt.Errorf("%w: no header row", ErrUnreadable)
	}
	return t, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
