package nes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func inesImage(prgBanks, chrBanks, flags6 uint8, payload []uint8) []uint8 {
	header := []uint8{
		0x4e, 0x45, 0x53, 0x1a, // "NES\x1a"
		prgBanks, chrBanks, flags6, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	return append(header, payload...)
}

func Test_ReadINES(t *testing.T) {
	t.Run("valid image", func(t *testing.T) {
		payload := make([]uint8, prgBankSizeBytes+chrBankSizeBytes)
		payload[0] = 0xa9
		image := inesImage(1, 1, 0x00, payload)

		rom, err := readINES(bytes.NewReader(image))

		assert.NoError(t, err)
		assert.Equal(t, prgBankSizeBytes, rom.Size(), "PRG size")
		v, err := rom.Read8(0x0000)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0xa9), v, "first program byte")
	})

	t.Run("invalid magic", func(t *testing.T) {
		image := []uint8{
			0xaa, 0x22, 0x11, 0xff, 0x00, 0x01, 0x02, 0x03,
			0x04, 0x05, 0xaa, 0x22, 0x11, 0xff, 0x00, 0x01,
		}

		_, err := readINES(bytes.NewReader(image))

		assert.EqualError(t, err, "invalid header")
	})

	t.Run("truncated PRG bank", func(t *testing.T) {
		image := inesImage(1, 0, 0x00, make([]uint8, 0x100))

		_, err := readINES(bytes.NewReader(image))

		assert.ErrorContains(t, err, "couldn't read PRG ROM")
	})

	t.Run("trainer is skipped", func(t *testing.T) {
		payload := make([]uint8, 512+prgBankSizeBytes)
		payload[512] = 0x4c // first byte after the trainer
		image := inesImage(1, 0, 0x04, payload)

		rom, err := readINES(bytes.NewReader(image))

		assert.NoError(t, err)
		v, err := rom.Read8(0x0000)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0x4c), v, "first program byte")
	})
}

func Test_NewROMFromBytes_CopiesTheProgram(t *testing.T) {
	program := []uint8{0xa9, 0xff}
	rom := NewROMFromBytes(program)

	program[0] = 0x00

	v, err := rom.Read8(0x0000)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xa9), v, "ROM keeps its own copy")
}

func Test_ROMRead8_BeyondTheBank(t *testing.T) {
	rom := NewROMFromBytes(make([]uint8, 0x10))

	_, err := rom.Read8(0x10)

	var busErr *BusError
	assert.ErrorAs(t, err, &busErr)
	assert.Equal(t, busRead, busErr.Op, "op")
	assert.Equal(t, uint16(0x8010), busErr.Addr, "address")
}
