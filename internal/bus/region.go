package bus

// Region serves one area of the address space. Addresses are absolute; a
// region rejects anything outside its own span with ErrOutOfRange.
type Region interface {
	Read(addr uint16) (byte, error)
	Write(addr uint16, value byte) error
}

// Cartridge is the ROM image behind ROM0 and ROM1.
type Cartridge interface {
	ReadByte(addr uint16) byte
}

// RAM is plain read/write storage covering one span.
type RAM struct {
	span Span
	data []byte
}

func NewRAM(a Area) *RAM {
	s := SpanOf(a)
	return &RAM{span: s, data: make([]byte, s.Size())}
}

func (r *RAM) Read(addr uint16) (byte, error) {
	if !r.span.Contains(addr) {
		return 0, outOfRange(r.span.Area, "read", addr)
	}
	return r.data[addr-r.span.Start], nil
}

func (r *RAM) Write(addr uint16, value byte) error {
	if !r.span.Contains(addr) {
		return outOfRange(r.span.Area, "write", addr)
	}
	r.data[addr-r.span.Start] = value
	return nil
}

const wramBankSize = 0x1000

// WorkRAM is the 8 KiB work RAM as two 4 KiB banks. Bank 1 is fixed; there
// is no CGB bank switching.
type WorkRAM struct {
	banks [2][wramBankSize]byte
}

func (w *WorkRAM) locate(op string, addr uint16) (bank int, off uint16, err error) {
	s := SpanOf(AreaWRAM)
	if !s.Contains(addr) {
		return 0, 0, outOfRange(AreaWRAM, op, addr)
	}
	off = addr - s.Start
	return int(off / wramBankSize), off % wramBankSize, nil
}

func (w *WorkRAM) Read(addr uint16) (byte, error) {
	bank, off, err := w.locate("read", addr)
	if err != nil {
		return 0, err
	}
	return w.banks[bank][off], nil
}

func (w *WorkRAM) Write(addr uint16, value byte) error {
	bank, off, err := w.locate("write", addr)
	if err != nil {
		return err
	}
	w.banks[bank][off] = value
	return nil
}

// Echo mirrors work RAM 0x2000 bytes lower. It holds no storage of its own.
type Echo struct {
	wram *WorkRAM
}

func NewEcho(w *WorkRAM) *Echo { return &Echo{wram: w} }

const echoOffset = 0x2000

func (e *Echo) Read(addr uint16) (byte, error) {
	if !SpanOf(AreaEcho).Contains(addr) {
		return 0, outOfRange(AreaEcho, "read", addr)
	}
	return e.wram.Read(addr - echoOffset)
}

func (e *Echo) Write(addr uint16, value byte) error {
	if !SpanOf(AreaEcho).Contains(addr) {
		return outOfRange(AreaEcho, "write", addr)
	}
	return e.wram.Write(addr-echoOffset, value)
}

// Unusable reads as zero and refuses writes.
type Unusable struct{}

func (Unusable) Read(addr uint16) (byte, error) {
	if !SpanOf(AreaUnusable).Contains(addr) {
		return 0, outOfRange(AreaUnusable, "read", addr)
	}
	return 0x00, nil
}

func (Unusable) Write(addr uint16, value byte) error {
	op := "write"
	if !SpanOf(AreaUnusable).Contains(addr) {
		return outOfRange(AreaUnusable, op, addr)
	}
	return &AddressError{Region: AreaUnusable, Addr: addr, Op: op, Err: ErrNotWritable}
}

// ROMBank exposes one 16 KiB half of the cartridge. Writes are MBC control
// writes on real hardware; without a mapper they are dropped.
type ROMBank struct {
	span Span
	cart Cartridge
}

func NewROMBank(a Area, c Cartridge) *ROMBank {
	return &ROMBank{span: SpanOf(a), cart: c}
}

func (r *ROMBank) Read(addr uint16) (byte, error) {
	if !r.span.Contains(addr) {
		return 0, outOfRange(r.span.Area, "read", addr)
	}
	return r.cart.ReadByte(addr), nil
}

func (r *ROMBank) Write(addr uint16, value byte) error {
	if !r.span.Contains(addr) {
		return outOfRange(r.span.Area, "write", addr)
	}
	return nil
}
