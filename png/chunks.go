package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/deepteams/imgcore/imgio"
)

// signature is the 8-byte magic every PNG stream must begin with.
var signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// chunkHeader is one PNG chunk's length + 4-byte type tag. Framing is
// big-endian length + type + data + CRC32, the byte-order mirror of
// the teacher's RIFF chunk walk (little-endian fourcc+size) adapted to
// PNG's wire format.
type chunkHeader struct {
	length uint32
	kind   [4]byte
}

func (h chunkHeader) String() string { return string(h.kind[:]) }

func readSignature(src imgio.Source) error {
	var buf [8]byte
	if err := readFull(src, buf[:]); err != nil {
		return fmt.Errorf("%w: reading signature: %v", ErrDecodeFailure, err)
	}
	if buf != signature {
		return fmt.Errorf("%w: bad PNG signature", ErrDecodeFailure)
	}
	return nil
}

func readChunkHeader(src imgio.Source) (chunkHeader, error) {
	var buf [8]byte
	if err := readFull(src, buf[:]); err != nil {
		return chunkHeader{}, fmt.Errorf("%w: reading chunk header: %v", ErrDecodeFailure, err)
	}
	var h chunkHeader
	h.length = binary.BigEndian.Uint32(buf[0:4])
	copy(h.kind[:], buf[4:8])
	return h, nil
}

// readChunkBody reads length bytes of chunk data plus the trailing
// CRC32, validating the CRC against (type, data).
func readChunkBody(src imgio.Source, h chunkHeader) ([]byte, error) {
	data := make([]byte, h.length)
	if err := readFull(src, data); err != nil {
		return nil, fmt.Errorf("%w: reading %s data: %v", ErrDecodeFailure, h, err)
	}
	var crcBuf [4]byte
	if err := readFull(src, crcBuf[:]); err != nil {
		return nil, fmt.Errorf("%w: reading %s crc: %v", ErrDecodeFailure, h, err)
	}
	want := binary.BigEndian.Uint32(crcBuf[:])
	got := crc32.ChecksumIEEE(append(append([]byte(nil), h.kind[:]...), data...))
	if got != want {
		return nil, fmt.Errorf("%w: %s crc mismatch", ErrDecodeFailure, h)
	}
	return data, nil
}

func readFull(src imgio.Source, buf []byte) error {
	for n := 0; n < len(buf); {
		k, err := src.Read(buf[n:])
		n += k
		if err != nil && n < len(buf) {
			return err
		}
	}
	return nil
}

func writeSignature(sink imgio.Sink) error {
	_, err := sink.Write(signature[:])
	return err
}

func writeChunk(sink imgio.Sink, kind string, data []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := sink.Write(lenBuf[:]); err != nil {
		return err
	}
	kindBytes := []byte(kind)
	if _, err := sink.Write(kindBytes); err != nil {
		return err
	}
	if len(data) > 0 {
		if _, err := sink.Write(data); err != nil {
			return err
		}
	}
	crc := crc32.ChecksumIEEE(append(append([]byte(nil), kindBytes...), data...))
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc)
	_, err := sink.Write(crcBuf[:])
	return err
}
