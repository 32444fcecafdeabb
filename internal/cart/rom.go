package cart

import (
	"errors"
	"fmt"
	"os"
)

const (
	BankSize = 0x4000
	// ImageSize is what two fixed banks can address; anything beyond needs a mapper.
	ImageSize = 2 * BankSize
)

var ErrEmptyROM = errors.New("rom image is empty")

// ROM is a cartridge image without a memory bank controller: bank 0 at
// 0x0000-0x3FFF and bank 1 at 0x4000-0x7FFF.
type ROM struct {
	banks [2][BankSize]byte
	size  int
}

// New copies the first ImageSize bytes of data. A shorter image is
// zero-filled.
func New(data []byte) *ROM {
	r := &ROM{size: len(data)}
	for i := range r.banks {
		lo := i * BankSize
		if lo >= len(data) {
			break
		}
		copy(r.banks[i][:], data[lo:])
	}
	return r
}

// Load reads a ROM file. Callers should check Truncated and warn.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rom %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("read rom %s: %w", path, ErrEmptyROM)
	}
	return New(data), nil
}

// ReadByte returns the byte at a CPU address in 0x0000-0x7FFF.
func (r *ROM) ReadByte(addr uint16) byte {
	if addr >= ImageSize {
		panic(fmt.Sprintf("cart: read %04X outside ROM", addr))
	}
	return r.banks[addr/BankSize][addr%BankSize]
}

// Size is the length of the source image in bytes.
func (r *ROM) Size() int { return r.size }

// Truncated reports whether the source image was larger than two banks.
func (r *ROM) Truncated() bool { return r.size > ImageSize }

// Bytes returns a copy of the 32 KiB image.
func (r *ROM) Bytes() []byte {
	out := make([]byte, 0, ImageSize)
	out = append(out, r.banks[0][:]...)
	return append(out, r.banks[1][:]...)
}
