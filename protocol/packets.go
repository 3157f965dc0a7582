package protocol

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/obeliskdev/mcchat/component"
	"github.com/valyala/bytebufferpool"
)

// Packet is the payload of a packet that carries chat components, without
// the length and id framing.
type Packet interface {
	Encode(w io.Writer, v Version) error
	Decode(r io.Reader, v Version) error
}

// EncodePacket returns the encoded payload of p.
func EncodePacket(p Packet, v Version) ([]byte, error) {
	dataBuf := bytebufferpool.Get()
	defer bytebufferpool.Put(dataBuf)

	if err := p.Encode(dataBuf, v); err != nil {
		return nil, fmt.Errorf("encode packet data for %T: %w", p, err)
	}

	out := make([]byte, dataBuf.Len())
	copy(out, dataBuf.B)
	return out, nil
}

// ClientboundLoginDisconnect keeps its JSON reason in every version.
type ClientboundLoginDisconnect struct {
	Reason component.Component
}

func (p *ClientboundLoginDisconnect) Encode(w io.Writer, v Version) error {
	return WriteComponent(w, v, p.Reason)
}

func (p *ClientboundLoginDisconnect) Decode(r io.Reader, v Version) (err error) {
	p.Reason, err = ReadComponent(r, v)
	return
}

// Chat positions of the legacy chat message packet.
const (
	PositionChat     byte = 0
	PositionSystem   byte = 1
	PositionGameInfo byte = 2
)

// ClientboundChatMessage is the unsigned chat packet used before 1.19.
type ClientboundChatMessage struct {
	Component component.Component
	Position  byte
	Sender    uuid.UUID
}

var errSignedChat = errors.New("chat message packet is signed since 1.19")

func (p *ClientboundChatMessage) Encode(w io.Writer, v Version) error {
	if v >= V1_19 {
		return errSignedChat
	}

	if err := WriteComponent(w, v, p.Component); err != nil {
		return err
	}

	if v >= V1_8 {
		if err := WriteByte(w, p.Position); err != nil {
			return err
		}
	}

	if v >= V1_16 {
		return WriteUUID(w, p.Sender)
	}
	return nil
}

func (p *ClientboundChatMessage) Decode(r io.Reader, v Version) (err error) {
	if v >= V1_19 {
		return errSignedChat
	}

	if p.Component, err = ReadComponent(r, v); err != nil {
		return err
	}

	if v >= V1_8 {
		if p.Position, err = ReadByte(r); err != nil {
			return err
		}
	}

	if v >= V1_16 {
		p.Sender, err = ReadUUID(r)
	}
	return
}

// ClientboundSystemChat exists from 1.19 on. Overlay shows the message above
// the hotbar instead of in the chat box.
type ClientboundSystemChat struct {
	Content component.Component
	Overlay bool
}

func (p *ClientboundSystemChat) check(v Version) error {
	if v < V1_19 {
		return fmt.Errorf("system chat packet does not exist in %s", v)
	}
	if v >= V1_20_3 {
		return ErrNBTComponent
	}
	return nil
}

func (p *ClientboundSystemChat) Encode(w io.Writer, v Version) error {
	if err := p.check(v); err != nil {
		return err
	}

	if err := WriteComponent(w, v, p.Content); err != nil {
		return err
	}

	if v == V1_19 {
		position := int32(PositionSystem)
		if p.Overlay {
			position = int32(PositionGameInfo)
		}
		return WriteVarInt(w, position)
	}
	return WriteBool(w, p.Overlay)
}

func (p *ClientboundSystemChat) Decode(r io.Reader, v Version) (err error) {
	if err := p.check(v); err != nil {
		return err
	}

	if p.Content, err = ReadComponent(r, v); err != nil {
		return err
	}

	if v == V1_19 {
		position, err := ReadVarInt(r)
		if err != nil {
			return err
		}
		p.Overlay = position == int32(PositionGameInfo)
		return nil
	}

	p.Overlay, err = ReadBool(r)
	return
}
