package viewml

import (
	"io"

	"github.com/pkg/errors"
)

// ChunkSize is the default per-read buffer size of the chunked driver.
const ChunkSize = 4096

// chunkedSource caps each read at a fixed chunk size and feeds every
// chunk to the hasher before the decoder can observe it, so the final
// digest covers the exact raw byte sequence regardless of how the
// underlying source splits it.
type chunkedSource struct {
	src    io.Reader
	hasher *Hasher
	size   int
	offset int64
}

func newChunkedSource(src io.Reader, hasher *Hasher, size int) *chunkedSource {
	if size <= 0 {
		size = ChunkSize
	}
	return &chunkedSource{src: src, hasher: hasher, size: size}
}

func (s *chunkedSource) Read(p []byte) (int, error) {
	if len(p) > s.size {
		p = p[:s.size]
	}
	n, err := s.src.Read(p)
	if n > 0 {
		_, _ = s.hasher.Write(p[:n])
		s.offset += int64(n)
	}
	if err != nil && err != io.EOF {
		return n, errors.Wrapf(err, "read failed at byte %d", s.offset)
	}
	return n, err
}
