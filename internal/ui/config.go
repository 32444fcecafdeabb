package ui

// Config contains monitor window settings.
type Config struct {
	Title        string // window title
	Scale        int    // integer upscaling factor
	ROMsDir      string // directory to browse for ROMs
	StepsPerTick int    // instructions executed per frame while running
	MemRows      int    // rows in the memory panel
	MemStart     uint16 // first address shown in the memory panel
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "gbemu"
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	if c.ROMsDir == "" {
		c.ROMsDir = "roms"
	}
	if c.StepsPerTick <= 0 {
		c.StepsPerTick = 1000
	}
	if c.MemRows <= 0 {
		c.MemRows = 8
	}
	if c.MemStart == 0 {
		c.MemStart = 0xC000
	}
}
