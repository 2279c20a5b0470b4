package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RAMRoundTrip(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	mem := bus.newCPUMemory()

	for _, addr := range []uint16{0x0000, 0x0123, 0x07ff} {
		assert.NoError(t, mem.Write8(addr, 0xa5))
		v, err := mem.Read8(addr)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0xa5), v, "value at %04X", addr)
	}
}

func Test_UnmappedAccessFaults(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	mem := bus.newCPUMemory()

	for _, addr := range []uint16{0x0800, 0x1fff, 0x2008, 0x4000, 0x7fff} {
		_, err := mem.Read8(addr)
		var busErr *BusError
		assert.ErrorAs(t, err, &busErr, "read at %04X", addr)
		assert.Equal(t, busRead, busErr.Op, "op")
		assert.Equal(t, addr, busErr.Addr, "address")

		err = mem.Write8(addr, 0x00)
		assert.ErrorAs(t, err, &busErr, "write at %04X", addr)
		assert.Equal(t, busWrite, busErr.Op, "op")
		assert.Equal(t, addr, busErr.Addr, "address")
	}
}

func Test_IORegisterLatch(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	mem := bus.newCPUMemory()

	for addr := uint16(0x2000); addr <= 0x2007; addr++ {
		assert.NoError(t, mem.Write8(addr, uint8(addr)))
		v, err := mem.Read8(addr)
		assert.NoError(t, err)
		assert.Equal(t, uint8(addr), v, "latched value at %04X", addr)
	}
}

func Test_ROMIsReadOnly(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	bus.rom = NewROMFromBytes(make([]uint8, 0x8000))
	mem := bus.newCPUMemory()

	err := mem.Write8(0x8000, 0xff)

	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.Equal(t, busWrite, busErr.Op, "op")
	assert.Equal(t, uint16(0x8000), busErr.Addr, "address")
}

func Test_ROMNotAttachedFaults(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	mem := bus.newCPUMemory()

	_, err := mem.Read8(0xfffc)

	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.Equal(t, busRead, busErr.Op, "op")
}

func Test_ShortROMReadFaults(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	bus.rom = NewROMFromBytes(make([]uint8, 0x4000))
	mem := bus.newCPUMemory()

	// last mapped byte of a 16 KB image
	_, err := mem.Read8(0xbfff)
	assert.NoError(t, err)

	_, err = mem.Read8(0xc000)
	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.Equal(t, uint16(0xc000), busErr.Addr, "address")
}

func Test_Read16IsLittleEndian(t *testing.T) {
	bus := NewBus(OpcodePolicyNOP)
	bus.ram.Write8(0x0010, 0x34)
	bus.ram.Write8(0x0011, 0x12)

	v, err := bus.cpu.read16(0x0010)

	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v)
}

func Test_RunFrame(t *testing.T) {
	// JMP $8000: a tight loop that never faults
	bus := prepare(t, 0x4c, 0x00, 0x80)

	assert.NoError(t, bus.RunFrame())
	assert.NotZero(t, bus.stepCounter, "steps executed")

	t.Run("paused frame executes nothing", func(t *testing.T) {
		bus.TogglePause()
		before := bus.stepCounter
		assert.NoError(t, bus.RunFrame())
		assert.Equal(t, before, bus.stepCounter, "steps while paused")
	})

	t.Run("single step advances exactly once", func(t *testing.T) {
		bus.OneStepAndStop()
		before := bus.stepCounter
		assert.NoError(t, bus.RunFrame())
		assert.Equal(t, before+1, bus.stepCounter, "steps after one-step")
	})
}

func Test_Disassemble(t *testing.T) {
	bus := prepare(t, 0xa9, 0xff, 0x4c, 0x00, 0x80, 0xd0, 0xfa)

	disasm := bus.Disassemble()

	assert.Equal(t, "$8000: LDA #$FF {IMM}", disasm[0x8000])
	assert.Equal(t, "$8002: JMP $8000 {ABS}", disasm[0x8002])
	assert.Equal(t, "$8005: BNE $8001 {REL}", disasm[0x8005])
	// unmapped gap between RAM and I/O
	assert.Equal(t, "$0800: ???", disasm[0x0800])
}
