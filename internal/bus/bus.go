package bus

// Bus routes CPU reads and writes to the region owning each address.
type Bus struct {
	regions [numAreas]Region
	wram    *WorkRAM
}

// New wires every area of MemoryMap to a region. cart backs ROM0 and ROM1.
func New(cart Cartridge) *Bus {
	b := &Bus{wram: new(WorkRAM)}
	b.regions[AreaROM0] = NewROMBank(AreaROM0, cart)
	b.regions[AreaROM1] = NewROMBank(AreaROM1, cart)
	b.regions[AreaVRAM] = NewRAM(AreaVRAM)
	b.regions[AreaERAM] = NewRAM(AreaERAM)
	b.regions[AreaWRAM] = b.wram
	b.regions[AreaEcho] = NewEcho(b.wram)
	b.regions[AreaOAM] = NewRAM(AreaOAM)
	b.regions[AreaUnusable] = Unusable{}
	b.regions[AreaIO] = NewRAM(AreaIO)
	b.regions[AreaHRAM] = NewRAM(AreaHRAM)
	b.regions[AreaIE] = NewRAM(AreaIE)
	return b
}

// Area returns the area that owns addr.
func (b *Bus) Area(addr uint16) Area { return owners[addr] }

// Region returns the region serving a.
func (b *Bus) Region(a Area) Region { return b.regions[a] }

// Read panics with a *RoutingError if the owning region rejects the access.
func (b *Bus) Read(addr uint16) byte {
	v, err := b.regions[owners[addr]].Read(addr)
	if err != nil {
		panic(&RoutingError{Addr: addr, Op: "read", Err: err})
	}
	return v
}

// Write panics with a *RoutingError if the owning region rejects the access.
func (b *Bus) Write(addr uint16, value byte) {
	if err := b.regions[owners[addr]].Write(addr, value); err != nil {
		panic(&RoutingError{Addr: addr, Op: "write", Err: err})
	}
}

// Dump reads n bytes starting at start, wrapping at the top of memory.
func (b *Bus) Dump(start uint16, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b.Read(start + uint16(i))
	}
	return out
}
