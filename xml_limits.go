package gdsxml

import (
	"cmp"
	"fmt"
	"io"
)

const defaultMaxDocumentSize = 32 << 20

type xmlDecodeLimits struct {
	maxDocumentSize int
}

func resolveXMLDecodeLimits(maxDocumentSize int) (xmlDecodeLimits, error) {
	if maxDocumentSize < 0 {
		return xmlDecodeLimits{}, fmt.Errorf("xml max document size must be >= 0")
	}
	return xmlDecodeLimits{maxDocumentSize: cmp.Or(maxDocumentSize, defaultMaxDocumentSize)}, nil
}

// readAll reads the whole document, failing once it exceeds the size limit.
func (l xmlDecodeLimits) readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(l.maxDocumentSize)+1))
	if err != nil {
		return nil, fmt.Errorf("read xml document: %w", err)
	}
	if len(data) > l.maxDocumentSize {
		return nil, fmt.Errorf("xml document exceeds %d bytes", l.maxDocumentSize)
	}
	return data, nil
}
