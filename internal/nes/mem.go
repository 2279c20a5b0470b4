package nes

// Memory is the CPU's view of the address space. Every access outside
// the configured regions returns a *BusError; the bus never panics and
// never drops an access silently.
type Memory interface {
	Read8(addr uint16) (uint8, error)
	Write8(addr uint16, data uint8) error
}

const (
	ramEndAddr   = 0x07ff
	ioStartAddr  = 0x2000
	ioEndAddr    = 0x2007
	romStartAddr = 0x8000
)

// $0000-$07FF: 2 KB of internal RAM
// $2000-$2007: memory-mapped I/O registers (stubbed)
// $8000-$FFFF: PRG ROM, indexed by addr - $8000
// everything else: bus fault
type cpuMemory struct {
	bus *Bus
}

func (b *Bus) newCPUMemory() *cpuMemory {
	return &cpuMemory{bus: b}
}

func (m *cpuMemory) Read8(addr uint16) (uint8, error) {
	switch {
	case addr <= ramEndAddr:
		return m.bus.ram.Read8(addr), nil
	case addr >= ioStartAddr && addr <= ioEndAddr:
		return m.bus.io.readRegister(addr), nil
	case addr >= romStartAddr:
		if m.bus.rom == nil {
			return 0, &BusError{Op: busRead, Addr: addr, Reason: "no ROM attached"}
		}
		return m.bus.rom.Read8(addr - romStartAddr)
	}
	return 0, &BusError{Op: busRead, Addr: addr, Reason: "unmapped address"}
}

func (m *cpuMemory) Write8(addr uint16, data uint8) error {
	switch {
	case addr <= ramEndAddr:
		m.bus.ram.Write8(addr, data)
		return nil
	case addr >= ioStartAddr && addr <= ioEndAddr:
		m.bus.io.writeRegister(addr, data)
		return nil
	case addr >= romStartAddr:
		return &BusError{Op: busWrite, Addr: addr, Reason: "PRG ROM is read only"}
	}
	return &BusError{Op: busWrite, Addr: addr, Reason: "unmapped address"}
}
