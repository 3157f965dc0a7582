package protocol

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/obeliskdev/mcchat/component"
)

const (
	MaxVarIntSize     = 5
	MaxPacketDataSize = 2097152
	// MaxChatLength is the largest JSON chat string a client accepts.
	MaxChatLength = 262144
)

// ErrNBTComponent is returned for fields that carry components as network NBT,
// which replaced JSON strings in 1.20.3.
var ErrNBTComponent = errors.New("component is sent as network nbt in this version")

// CodecFor returns the component codec matching v.
func CodecFor(v Version) *component.Codec {
	return component.NewCodec(v.Semver())
}

// WriteComponent writes c as a JSON string field.
func WriteComponent(w io.Writer, v Version, c component.Component) error {
	data, err := CodecFor(v).Marshal(c)
	if err != nil {
		return fmt.Errorf("encode component: %w", err)
	}
	if len(data) > MaxChatLength {
		return fmt.Errorf("component json length %d exceeds max %d", len(data), MaxChatLength)
	}
	return WriteByteSlice(w, data)
}

// ReadComponent reads a JSON string field and decodes it.
func ReadComponent(r io.Reader, v Version) (component.Component, error) {
	data, err := ReadBytes(r)
	if err != nil {
		return nil, fmt.Errorf("read component: %w", err)
	}
	if len(data) > MaxChatLength {
		return nil, fmt.Errorf("component json length %d exceeds max %d", len(data), MaxChatLength)
	}
	return CodecFor(v).Unmarshal(data)
}

// ReadUUID reads a UUID as two big endian longs, the form chat senders use.
func ReadUUID(r io.Reader) (uuid.UUID, error) {
	var id uuid.UUID
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return uuid.Nil, fmt.Errorf("read uuid: %w", err)
	}
	return id, nil
}

func WriteUUID(w io.Writer, id uuid.UUID) error {
	_, err := w.Write(id[:])
	return err
}

// WriteVarInt writes value in at most MaxVarIntSize bytes, seven bits per byte
// with the high bit set on every byte but the last. Negative values always
// take five bytes.
func WriteVarInt(w io.Writer, value int32) error {
	var buf [MaxVarIntSize]byte
	n := 0
	for uv := uint32(value); ; uv >>= 7 {
		if uv < 0x80 {
			buf[n] = byte(uv)
			n++
			break
		}
		buf[n] = byte(uv) | 0x80
		n++
	}
	_, err := w.Write(buf[:n])
	return err
}

// ReadVarInt reads a value written by WriteVarInt. A sixth continuation byte
// is an error.
func ReadVarInt(r io.Reader) (int32, error) {
	var val uint32
	for shift := uint(0); shift < 7*MaxVarIntSize; shift += 7 {
		b, err := ReadByte(r)
		if err != nil {
			return 0, err
		}
		val |= uint32(b&0x7F) << shift
		if b < 0x80 {
			return int32(val), nil
		}
	}
	return 0, errors.New("varint is longer than 5 bytes")
}

// WriteString writes a varint length prefixed UTF-8 string.
func WriteString(w io.Writer, value string) error {
	if err := WriteVarInt(w, int32(len(value))); err != nil {
		return err
	}
	_, err := io.WriteString(w, value)
	return err
}

func ReadString(r io.Reader) (string, error) {
	data, err := ReadBytes(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadBytes reads a varint length prefixed byte array of at most
// MaxPacketDataSize bytes.
func ReadBytes(r io.Reader) ([]byte, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	if length < 0 || length > MaxPacketDataSize {
		return nil, fmt.Errorf("length %d is outside 0..%d", length, MaxPacketDataSize)
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("read %d bytes: %w", length, err)
	}
	return data, nil
}

// WriteByteSlice writes data prefixed with its varint length.
func WriteByteSlice(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int32(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// ReadByte uses r's own ReadByte when it has one, so buffered readers are not
// read through a one byte slice.
func ReadByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

func WriteByte(w io.Writer, b byte) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte(b)
	}
	_, err := w.Write([]byte{b})
	return err
}

func ReadBool(r io.Reader) (bool, error) {
	b, err := ReadByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("invalid bool byte 0x%02x", b)
}

func WriteBool(w io.Writer, v bool) error {
	if v {
		return WriteByte(w, 1)
	}
	return WriteByte(w, 0)
}
