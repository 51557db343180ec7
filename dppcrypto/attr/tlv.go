// Package attr implements the little-endian TLV attribute wire format DPP
// frames are built from, plus the AES-SIV wrapping (RFC 5297) used to
// authenticate-and-encrypt the "wrapped data" attribute that carries the
// rest of a frame's attributes.
package attr

import (
	"encoding/binary"

	"github.com/go-dpp/dpp/dpperr"
)

// Type identifies a DPP attribute. Values are the little-endian attribute
// IDs assigned by the Easy Connect specification; only the ones the crypto
// and URI layers touch directly are named here.
type Type uint16

const (
	TypeStatus              Type = 0x1000
	TypeInitiatorBootKeyHash Type = 0x1002
	TypeResponderBootKeyHash Type = 0x1003
	TypeInitiatorProtoKey    Type = 0x1004
	TypeResponderProtoKey    Type = 0x1005
	TypeInitiatorNonce       Type = 0x1009
	TypeInitiatorCapabilities Type = 0x100a
	TypeResponderNonce       Type = 0x100b
	TypeResponderCapabilities Type = 0x100c
	TypeWrappedData          Type = 0x1010
	TypeInitiatorAuthTag     Type = 0x1011
	TypeResponderAuthTag     Type = 0x1012
	TypeConfigObject         Type = 0x1019
	TypeConnector            Type = 0x1023
)

// TLV is one decoded (type, value) pair; length is implicit in len(Value).
type TLV struct {
	Type  Type
	Value []byte
}

// Iter walks a little-endian TLV byte stream one attribute at a time,
// grounded on the original implementation's dpp_attr_iter cursor.
type Iter struct {
	pos []byte
}

// NewIter returns an iterator over pdu.
func NewIter(pdu []byte) *Iter {
	return &Iter{pos: pdu}
}

// Next returns the next attribute, or ok=false once the stream is exhausted.
// A malformed length (one that would run past the end of the buffer) is
// reported as an error rather than silently truncating.
func (it *Iter) Next() (t TLV, ok bool, err error) {
	if len(it.pos) == 0 {
		return TLV{}, false, nil
	}
	if len(it.pos) < 4 {
		return TLV{}, false, dpperr.Malformed("attr.Iter.Next: truncated header", nil)
	}
	typ := Type(binary.LittleEndian.Uint16(it.pos[0:2]))
	length := binary.LittleEndian.Uint16(it.pos[2:4])
	rest := it.pos[4:]
	if int(length) > len(rest) {
		return TLV{}, false, dpperr.Malformed("attr.Iter.Next: length exceeds buffer", nil)
	}
	value := rest[:length]
	it.pos = rest[length:]
	return TLV{Type: typ, Value: value}, true, nil
}

// Append encodes one attribute onto to and returns the extended slice.
func Append(to []byte, t Type, value []byte) []byte {
	header := make([]byte, 4)
	binary.LittleEndian.PutUint16(header[0:2], uint16(t))
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(value)))
	to = append(to, header...)
	to = append(to, value...)
	return to
}

// Find scans pdu for the first attribute of type t.
func Find(pdu []byte, t Type) ([]byte, bool, error) {
	it := NewIter(pdu)
	for {
		tlv, ok, err := it.Next()
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		if tlv.Type == t {
			return tlv.Value, true, nil
		}
	}
}

// All decodes every attribute in pdu, in order.
func All(pdu []byte) ([]TLV, error) {
	var out []TLV
	it := NewIter(pdu)
	for {
		tlv, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tlv)
	}
}
