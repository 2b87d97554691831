package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

var gzipMagic = []byte{0x1f, 0x8b}

// gzipFile closes the decompressor and the file underneath it.
type gzipFile struct {
	*gzip.Reader
	f io.Closer
}

func (g gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.f.Close(); err == nil {
		err = ferr
	}
	return err
}

type bufferedFile struct {
	*bufio.Reader
	f io.Closer
}

func (b bufferedFile) Close() error { return b.f.Close() }

// Open returns a reader for path, "-" meaning stdin. Gzip input is
// recognised by its magic bytes, so compressed stdin works too; a .gz name
// without the magic bytes is an error.
func Open(path string) (io.ReadCloser, error) {
	f := io.NopCloser(os.Stdin)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		f = fh
	}

	br := bufio.NewReader(f)
	head, _ := br.Peek(2)
	if string(head) == string(gzipMagic) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return gzipFile{Reader: gr, f: f}, nil
	}
	return bufferedFile{Reader: br, f: f}, nil
}
