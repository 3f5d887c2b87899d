package colstats

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// WriteTable writes header followed by one "word\tcount\n" line per entry.
func WriteTable(w io.Writer, header string, entries []Entry) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header); err != nil {
		return errors.Wrap(err, "can't write header")
	}

	var buf []byte
	for _, e := range entries {
		buf = buf[:0]
		buf = append(buf, e.Word...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(e.Count), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrapf(err, "can't write %q", e.Word)
		}
	}

	return errors.Wrap(bw.Flush(), "can't flush")
}

// WriteTableFile creates or truncates path and writes the table to it.
// A failure part way leaves whatever was written in place.
func WriteTableFile(path, header string, entries []Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return newIOError("create", path, err)
	}

	if err := WriteTable(file, header, entries); err != nil {
		file.Close()
		return newIOError("write", path, errors.Cause(err))
	}

	if err := file.Close(); err != nil {
		return newIOError("close", path, err)
	}
	return nil
}
