package bus

import "fmt"

// Area names one region of the 16-bit address space.
type Area int

const (
	AreaROM0 Area = iota
	AreaROM1
	AreaVRAM
	AreaERAM
	AreaWRAM
	AreaEcho
	AreaOAM
	AreaUnusable
	AreaIO
	AreaHRAM
	AreaIE

	numAreas
	areaNone Area = -1
)

var areaNames = [numAreas]string{
	"ROM0", "ROM1", "VRAM", "ERAM", "WRAM", "Echo", "OAM", "Unusable", "IO", "HRAM", "IE",
}

func (a Area) String() string {
	if a < 0 || a >= numAreas {
		return fmt.Sprintf("Area(%d)", int(a))
	}
	return areaNames[a]
}

// Span is an inclusive address range owned by one area.
type Span struct {
	Area       Area
	Start, End uint16
}

// Size is the number of addresses in the span.
func (s Span) Size() int { return int(s.End) - int(s.Start) + 1 }

// Contains reports whether addr falls inside the span.
func (s Span) Contains(addr uint16) bool { return addr >= s.Start && addr <= s.End }

// MemoryMap partitions 0x0000-0xFFFF. It is the only place the region
// boundaries are written down; regions, the routing index and the tests all
// read them from here.
var MemoryMap = [numAreas]Span{
	{AreaROM0, 0x0000, 0x3FFF},
	{AreaROM1, 0x4000, 0x7FFF},
	{AreaVRAM, 0x8000, 0x9FFF},
	{AreaERAM, 0xA000, 0xBFFF},
	{AreaWRAM, 0xC000, 0xDFFF},
	{AreaEcho, 0xE000, 0xFDFF},
	{AreaOAM, 0xFE00, 0xFE9F},
	{AreaUnusable, 0xFEA0, 0xFEFF},
	{AreaIO, 0xFF00, 0xFF7F},
	{AreaHRAM, 0xFF80, 0xFFFE},
	{AreaIE, 0xFFFF, 0xFFFF},
}

// SpanOf returns the MemoryMap entry for a.
func SpanOf(a Area) Span {
	for _, s := range MemoryMap {
		if s.Area == a {
			return s
		}
	}
	panic(fmt.Sprintf("bus: no span for %v", a))
}

// owners maps every address to the area that serves it.
var owners = mustIndex(MemoryMap[:])

// buildIndex expands spans into a per-address owner table. Every address must
// be covered exactly once.
func buildIndex(spans []Span) (*[0x10000]Area, error) {
	var idx [0x10000]Area
	for i := range idx {
		idx[i] = areaNone
	}
	for _, s := range spans {
		if s.Start > s.End {
			return nil, fmt.Errorf("bus: %v span %04X-%04X is reversed", s.Area, s.Start, s.End)
		}
		for a := int(s.Start); a <= int(s.End); a++ {
			if prev := idx[a]; prev != areaNone {
				return nil, fmt.Errorf("bus: %04X owned by both %v and %v", a, prev, s.Area)
			}
			idx[a] = s.Area
		}
	}
	for a, owner := range idx {
		if owner == areaNone {
			return nil, fmt.Errorf("bus: %04X has no owner", a)
		}
	}
	return &idx, nil
}

func mustIndex(spans []Span) *[0x10000]Area {
	idx, err := buildIndex(spans)
	if err != nil {
		panic(err)
	}
	return idx
}
