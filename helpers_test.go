package mimekit

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// niftiHeader returns a minimal single-file NIfTI-1 header.
func niftiHeader() []byte {
	hdr := make([]byte, 352)
	binary.LittleEndian.PutUint32(hdr[0:4], 348)
	copy(hdr[344:], "n+1\x00")
	return hdr
}

// dicomFile returns a DICOM Part 10 preamble, marker and first element.
func dicomFile() []byte {
	data := make([]byte, 132, 144)
	copy(data[128:], "DICM")
	return append(data, 0x02, 0x00, 0x00, 0x00, 'U', 'L', 0x04, 0x00, 0xC8, 0x00, 0x00, 0x00)
}

// noise is binary content no backend or predicate recognises. The control
// bytes keep text detectors from claiming it.
func noise() []byte {
	return bytes.Repeat([]byte{0x01, 0xAB, 0x02, 0xCD}, 64)
}

func newTestDetector(t *testing.T, opts ...Option) *Detector {
	t.Helper()
	d, err := New(nil, opts...)
	require.NoError(t, err)
	return d
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}
