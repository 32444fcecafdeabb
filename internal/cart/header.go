package cart

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
)

const (
	logoStart     = 0x0104
	titleStart    = 0x0134
	titleEnd      = 0x0144
	checksumStart = 0x0134
	checksumEnd   = 0x014C
	headerEnd     = 0x014F
)

var ErrShortHeader = errors.New("rom too small to contain a header")

var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header holds the cartridge fields the loader reports.
type Header struct {
	Title          string
	CartType       byte // 0x0147
	ROMSizeCode    byte // 0x0148
	RAMSizeCode    byte // 0x0149
	HeaderChecksum byte // 0x014D
	GlobalChecksum uint16

	LogoOK     bool
	ChecksumOK bool
}

// ParseHeader decodes 0x0100-0x014F. A bad logo or checksum is reported in
// the result, not as an error; test ROMs often carry neither.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) <= headerEnd {
		return nil, ErrShortHeader
	}
	h := &Header{
		Title:          strings.TrimRight(string(rom[titleStart:titleEnd]), "\x00"),
		CartType:       rom[0x0147],
		ROMSizeCode:    rom[0x0148],
		RAMSizeCode:    rom[0x0149],
		HeaderChecksum: rom[0x014D],
		GlobalChecksum: binary.BigEndian.Uint16(rom[0x014E:0x0150]),
		LogoOK:         bytes.Equal(rom[logoStart:logoStart+len(nintendoLogo)], nintendoLogo[:]),
	}
	h.ChecksumOK = headerChecksum(rom) == h.HeaderChecksum
	return h, nil
}

func headerChecksum(rom []byte) byte {
	var sum byte
	for _, b := range rom[checksumStart : checksumEnd+1] {
		sum = sum - b - 1
	}
	return sum
}

// NeedsMapper reports whether the cartridge expects a bank controller or
// more than 32 KiB of ROM.
func (h *Header) NeedsMapper() bool {
	return h.CartType != 0x00 || h.ROMSizeCode != 0x00
}

// ROMSize decodes the ROM size code. Unknown codes give 0.
func (h *Header) ROMSize() int {
	switch c := h.ROMSizeCode; {
	case c <= 0x08:
		return ImageSize << c
	case c == 0x52:
		return 1152 * 1024
	case c == 0x53:
		return 1280 * 1024
	case c == 0x54:
		return 1536 * 1024
	}
	return 0
}

// TypeName is a short label for log lines.
func (h *Header) TypeName() string {
	switch h.CartType {
	case 0x00:
		return "ROM ONLY"
	case 0x01, 0x02, 0x03:
		return "MBC1"
	case 0x05, 0x06:
		return "MBC2"
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return "MBC3"
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return "MBC5"
	}
	return "unknown"
}
