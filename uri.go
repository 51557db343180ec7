// Package dpp implements the Device Provisioning Protocol bootstrapping URI
// codec and configuration object codec, built on the cryptographic
// primitives in the dppcrypto subpackages.
package dpp

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-dpp/dpp/dppcrypto/band"
	"github.com/go-dpp/dpp/dppcrypto/ecc"
	"github.com/go-dpp/dpp/dppcrypto/spki"
	"github.com/go-dpp/dpp/dpperr"
)

// URIInfo is the decoded content of a "DPP:" bootstrapping URI: the
// mandatory public key, plus whichever optional tokens (channel list, MAC,
// version, free-text info/host) were present.
type URIInfo struct {
	BootPublic *ecc.Point
	Freqs      []uint32
	MAC        [6]byte
	HasMAC     bool
	Version    uint8
	HasVersion bool
	Info       string
	Host       string
}

// ParseURI parses a "DPP:" bootstrapping URI per Easy Connect §5.2.1. It
// mirrors the reference implementation's cursor-based token scanner byte
// for byte, including its requirement that the URI terminate with two
// semicolons (one closing the final token, one as an explicit terminator)
// and reject any trailing data after that point.
func ParseURI(uri string) (*URIInfo, error) {
	const prefix = "DPP:"
	if !strings.HasPrefix(uri, prefix) {
		return nil, dpperr.Malformed("dpp.ParseURI: missing DPP: prefix", nil)
	}
	if len(uri) == 0 {
		return nil, dpperr.Malformed("dpp.ParseURI: empty input", nil)
	}

	info := &URIInfo{}
	pos := len(prefix)
	end := len(uri) - 1

	for tokenOK(uri, pos) {
		valueStart := pos + 2
		length := tokenLen(uri, valueStart, ';')
		if length == 0 {
			return nil, dpperr.Malformed("dpp.ParseURI: empty token value", nil)
		}
		tag := uri[pos]
		value := uri[valueStart : valueStart+length]

		switch tag {
		case 'C':
			freqs, err := parseClassAndChannel(value)
			if err != nil {
				return nil, err
			}
			info.Freqs = freqs
		case 'M':
			mac, err := parseMAC(value)
			if err != nil {
				return nil, err
			}
			info.MAC = mac
			info.HasMAC = true
		case 'V':
			v, err := parseVersion(value)
			if err != nil {
				return nil, err
			}
			info.Version = v
			info.HasVersion = true
		case 'K':
			p, err := parseKey(value)
			if err != nil {
				return nil, err
			}
			info.BootPublic = p
		case 'I':
			info.Info = value
		case 'H':
			info.Host = value
		default:
			return nil, dpperr.Malformed(fmt.Sprintf("dpp.ParseURI: unknown token %q", string(tag)), nil)
		}

		next, ok := tokenNext(uri, pos, ';')
		if !ok {
			pos = -1
			break
		}
		pos = next
	}

	if pos != end {
		return nil, dpperr.Malformed("dpp.ParseURI: malformed terminator or trailing data", nil)
	}
	if info.BootPublic == nil {
		return nil, dpperr.Malformed("dpp.ParseURI: missing K: token", nil)
	}
	return info, nil
}

// tokenOK reports whether uri[pos] begins a well-formed "X:..." token: a
// single tag character, a colon, and at least one byte of value data.
func tokenOK(uri string, pos int) bool {
	return pos < len(uri) && pos+1 < len(uri) && uri[pos+1] == ':' && pos+2 < len(uri)
}

// tokenLen returns the number of bytes from start up to (not including) the
// next occurrence of sep, or 0 if sep does not appear.
func tokenLen(uri string, start int, sep byte) int {
	idx := strings.IndexByte(uri[start:], sep)
	if idx < 0 {
		return 0
	}
	return idx
}

// tokenNext finds the next occurrence of sep at or after pos and returns
// the index just past it, unless that separator is the last byte of the
// string, in which case ok is false: a URI must never end in a single
// unterminated semicolon.
func tokenNext(uri string, pos int, sep byte) (next int, ok bool) {
	idx := strings.IndexByte(uri[pos:], sep)
	if idx < 0 {
		return 0, false
	}
	sepIdx := pos + idx
	if sepIdx+1 >= len(uri) {
		return 0, false
	}
	return sepIdx + 1, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parseClassAndChannel parses a "C:" token's value: a comma-separated list
// of <operating class>/<channel> pairs, each resolved to a frequency via
// the band package's operating-class table.
func parseClassAndChannel(value string) ([]uint32, error) {
	var freqs []uint32
	for _, seg := range strings.Split(value, ",") {
		parts := strings.SplitN(seg, "/", 2)
		if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
			return nil, dpperr.Malformed("dpp.ParseURI: malformed C: entry", nil)
		}
		class, err := strconv.ParseUint(parts[0], 10, 8)
		if err != nil {
			return nil, dpperr.Malformed("dpp.ParseURI: operating class overflow", nil)
		}
		channel, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return nil, dpperr.Malformed("dpp.ParseURI: channel overflow", nil)
		}
		freq, err := band.FreqOf(uint8(class), uint8(channel))
		if err != nil {
			return nil, dpperr.Malformed("dpp.ParseURI: unknown class/channel", nil)
		}
		freqs = append(freqs, freq)
	}
	if len(freqs) == 0 {
		return nil, dpperr.Malformed("dpp.ParseURI: empty C: token", nil)
	}
	return freqs, nil
}

// parseMAC parses a "M:" token's value: 12 hex digits naming a unicast,
// non-broadcast station address.
func parseMAC(value string) ([6]byte, error) {
	var mac [6]byte
	if len(value) != 12 {
		return mac, dpperr.Malformed("dpp.ParseURI: M: token must be 12 hex digits", nil)
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return mac, dpperr.Malformed("dpp.ParseURI: M: token not valid hex", err)
	}
	copy(mac[:], b)
	if mac[0]&0x01 != 0 {
		return mac, dpperr.Malformed("dpp.ParseURI: M: token is a multicast address", nil)
	}
	if mac == ([6]byte{}) {
		return mac, dpperr.Malformed("dpp.ParseURI: M: token is the zero address", nil)
	}
	return mac, nil
}

// parseVersion parses a "V:" token's value: the single ASCII digit '1' or
// '2', per Easy Connect's published protocol versions.
func parseVersion(value string) (uint8, error) {
	if len(value) != 1 || (value[0] != '1' && value[0] != '2') {
		return 0, dpperr.Malformed("dpp.ParseURI: V: token must be 1 or 2", nil)
	}
	return value[0] - '0', nil
}

// parseKey parses a "K:" token's value: base64-encoded SPKI DER.
func parseKey(value string) (*ecc.Point, error) {
	der, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, dpperr.Malformed("dpp.ParseURI: K: token not valid base64", err)
	}
	p, err := spki.Decode(der)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GenerateURI emits a "DPP:" bootstrapping URI for a public key, following
// the reference implementation's dpp_generate_uri token ordering: K, M, C,
// I, H, V, then the closing double semicolon.
func GenerateURI(bootPublic *ecc.Point, version uint8, mac *[6]byte, freqs []uint32, infoText, host string) (string, error) {
	der, err := spki.Encode(bootPublic)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("DPP:K:")
	b.WriteString(base64.StdEncoding.EncodeToString(der))
	b.WriteByte(';')

	if mac != nil {
		fmt.Fprintf(&b, "M:%02x%02x%02x%02x%02x%02x;",
			mac[0], mac[1], mac[2], mac[3], mac[4], mac[5])
	}

	if len(freqs) > 0 {
		b.WriteString("C:")
		for i, freq := range freqs {
			class, channel, err := band.EmissionClass(freq)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "%d/%d", class, channel)
			if i != len(freqs)-1 {
				b.WriteByte(',')
			}
		}
		b.WriteByte(';')
	}

	if infoText != "" {
		fmt.Fprintf(&b, "I:%s;", infoText)
	}
	if host != "" {
		fmt.Fprintf(&b, "H:%s;", host)
	}
	if version != 0 {
		fmt.Fprintf(&b, "V:%d;", version)
	}
	b.WriteByte(';')

	return b.String(), nil
}
