// Package lineio opens line-oriented inputs for the command drivers. Inputs
// are files or stdin, optionally gzip-compressed.
package lineio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/pgzip"

	"github.com/agentstation/gbcatalog/pkg/constants"
	"github.com/agentstation/gbcatalog/pkg/errors"
)

// Stdin is the name used for standard input.
const Stdin = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// Input is an opened line source.
type Input struct {
	io.Reader
	// Name is the resolved path, or "-" for stdin.
	Name string

	closers []io.Closer
}

// Close releases the decompressor and the underlying file.
func (in *Input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	in.closers = nil
	return first
}

// Resolve returns path joined to sourceDir when path is relative and
// sourceDir is set. Stdin and absolute paths are returned unchanged.
func Resolve(sourceDir, path string) string {
	if path == "" || path == Stdin || sourceDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(sourceDir, path)
}

// Open opens path, or stdin when path is empty or "-". Gzip content is
// detected from its magic bytes and decompressed transparently.
func Open(path string) (*Input, error) {
	return OpenWith(path, os.Stdin)
}

// OpenWith is Open reading from stdin when path names standard input.
func OpenWith(path string, stdin io.Reader) (*Input, error) {
	in := &Input{Name: Stdin}
	var src io.Reader = stdin

	if path != "" && path != Stdin {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewNotFoundError("file", path)
			}
			return nil, errors.WrapIO("open", path, err)
		}
		in.Name = path
		in.closers = append(in.closers, f)
		src = f
	}

	br := bufio.NewReader(src)
	magic, _ := br.Peek(len(gzipMagic))
	if !bytes.Equal(magic, gzipMagic) {
		in.Reader = br
		return in, nil
	}

	zr, err := pgzip.NewReader(br)
	if err != nil {
		_ = in.Close()
		return nil, errors.WrapIO("decompress", in.Name, err)
	}
	in.closers = append(in.closers, zr)
	in.Reader = zr
	return in, nil
}

// ReadLines reads every line of r with trailing carriage returns removed.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return lines, errors.WrapIO("read", "input", err)
	}
	return lines, nil
}

// ReadFile opens path and reads all of its lines.
func ReadFile(path string) ([]string, error) {
	in, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	return ReadLines(in)
}

// NewScanner returns a line scanner sized for long genome listing lines.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, constants.WriteBufferSize), constants.MaxLineSize)
	return scanner
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriterSize(w, constants.WriteBufferSize)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return errors.WrapIO("write", "output", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.WrapIO("write", "output", err)
		}
	}
	return errors.WrapIO("write", "output", bw.Flush())
}
