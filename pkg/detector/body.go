package detector

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
)

// drainBody reads and discards r in chunkSize pieces and returns the number of
// bytes consumed. It stops with ErrMaxResponseSize as soon as the running total
// goes past maxBodySize, without issuing another read.
func drainBody(r io.Reader, maxBodySize int64, chunkSize int, logger zerolog.Logger) (int64, error) {
	buf := make([]byte, chunkSize)
	var read int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			logger.Debug().Int("bytes", n).Msg("Read chunk of response body")
			read += int64(n)
			if read > maxBodySize {
				return read, ErrMaxResponseSize
			}
		}
		if errors.Is(err, io.EOF) {
			return read, nil
		}
		if err != nil {
			return read, err
		}
	}
}
