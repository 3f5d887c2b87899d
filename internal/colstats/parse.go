package colstats

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table maps a word to its count.
type Table map[string]int

// ReadTable reads a header line followed by "word count" lines from r.
// The header is returned verbatim, line terminator included.
func ReadTable(r io.Reader) (string, Table, error) {
	return readTable(r, "")
}

// ReadTableFile is ReadTable on the file at path.
func ReadTableFile(path string) (string, Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", nil, newIOError("open", path, err)
	}
	defer file.Close()

	return readTable(file, path)
}

func readTable(r io.Reader, path string) (string, Table, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	switch {
	case err == io.EOF && header == "":
		return "", nil, &ParseError{Path: path, Msg: "no header"}
	case err != nil && err != io.EOF:
		return "", nil, newIOError("read", path, err)
	}

	counts := make(Table)
	for lineNo := 2; err == nil; lineNo++ {
		var line string
		line, err = br.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", nil, newIOError("read", path, err)
		}

		word, count, ok, perr := parseLine(line)
		if perr != nil {
			perr.Path = path
			perr.Line = lineNo
			return "", nil, perr
		}
		if ok {
			counts[word] = count
		}
	}

	return header, counts, nil
}

// parseLine splits a data line into word and count. ok is false for blank lines.
func parseLine(line string) (word string, count int, ok bool, err *ParseError) {
	fields := strings.FieldsFunc(line, isSpace)
	switch len(fields) {
	case 0:
		return "", 0, false, nil
	case 1:
		return "", 0, false, &ParseError{
			Text: strings.TrimRight(line, "\r\n"),
			Msg:  "expected word and count, got",
		}
	}

	n, perr := strconv.ParseInt(fields[1], 10, 0)
	if perr != nil {
		return "", 0, false, &ParseError{
			Text: strings.TrimRight(line, "\r\n"),
			Msg:  "bad count in",
			Err:  perr,
		}
	}

	return fields[0], int(n), true, nil
}

// isSpace matches ASCII whitespace only; words may contain other spaces.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
