package colstats

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

// progressReader wraps f in a progress bar sized to the file.
// The returned func finishes the bar.
func progressReader(f *os.File, out io.Writer) (io.Reader, func(), error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, nil, newIOError("stat", f.Name(), err)
	}

	bar := pb.Full.New(0).SetTotal(fi.Size())
	bar.SetWriter(out)
	bar.Set(pb.Bytes, true)
	bar.Start()
	return bar.NewProxyReader(f), func() { bar.Finish() }, nil
}
