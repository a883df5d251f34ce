package logs

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"bootsplash/internal/app/errors"
)

// Logger record layout
const (
	HeaderSize     = 20
	MaxPayloadSize = 4076
	MaxRecordSize  = 5 * 1024
)

// DecodeRecord decodes one logger record read from a log device.
// Layout: len u16, hdr_size u16, pid i32, tid i32, sec i32, nsec i32, then
// priority u8, NUL-terminated tag, NUL-terminated message.
func DecodeRecord(buf []byte) (Entry, error) {
	if len(buf) < HeaderSize {
		return Entry{}, fmt.Errorf("%w: short header (%d bytes)", errors.ErrMalformedRecord, len(buf))
	}

	payloadLen := int(binary.LittleEndian.Uint16(buf[0:2]))
	hdrSize := int(binary.LittleEndian.Uint16(buf[2:4]))

	if hdrSize == 0 {
		hdrSize = HeaderSize
	}

	if hdrSize < HeaderSize || hdrSize > len(buf) {
		return Entry{}, fmt.Errorf("%w: header size %d", errors.ErrMalformedRecord, hdrSize)
	}

	if payloadLen > MaxPayloadSize || hdrSize+payloadLen > len(buf) {
		return Entry{}, fmt.Errorf("%w: payload length %d", errors.ErrMalformedRecord, payloadLen)
	}

	entry := Entry{
		PID:  int32(binary.LittleEndian.Uint32(buf[4:8])),
		TID:  int32(binary.LittleEndian.Uint32(buf[8:12])),
		Sec:  int32(binary.LittleEndian.Uint32(buf[12:16])),
		Nsec: int32(binary.LittleEndian.Uint32(buf[16:20])),
	}

	payload := buf[hdrSize : hdrSize+payloadLen]
	if len(payload) < 2 {
		return Entry{}, fmt.Errorf("%w: payload too short", errors.ErrMalformedRecord)
	}

	entry.Priority = Priority(payload[0])

	rest := payload[1:]

	tagEnd := bytes.IndexByte(rest, 0)
	if tagEnd < 0 {
		return Entry{}, fmt.Errorf("%w: unterminated tag", errors.ErrMalformedRecord)
	}

	entry.Tag = string(rest[:tagEnd])

	msg := rest[tagEnd+1:]
	if end := bytes.IndexByte(msg, 0); end >= 0 {
		msg = msg[:end]
	}

	entry.Message = string(msg)

	return entry, nil
}

// EncodeRecord builds a v1 logger record; used by tests and replay tooling
func EncodeRecord(e Entry) []byte {
	payload := make([]byte, 0, len(e.Tag)+len(e.Message)+3)
	payload = append(payload, byte(e.Priority))
	payload = append(payload, e.Tag...)
	payload = append(payload, 0)
	payload = append(payload, e.Message...)
	payload = append(payload, 0)

	buf := make([]byte, HeaderSize, HeaderSize+len(payload))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(len(payload)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(e.PID))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(e.TID))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(e.Sec))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(e.Nsec))

	return append(buf, payload...)
}
