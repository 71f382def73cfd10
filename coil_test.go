package pdu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestCoilState(t *testing.T) {
	on := CoilStateOf(true)
	assert.Equal(t, CoilOn, on)
	assert.Equal(t, CoilOff, on.Not())
	assert.True(t, on.Bool())
	assert.Equal(t, uint16(0xFF00), on.Uint16())
	assert.Equal(t, "on", on.String())

	off := CoilStateOf(false)
	assert.Equal(t, CoilOff, off)
	assert.Equal(t, CoilOn, off.Not())
	assert.False(t, off.Bool())
	assert.Equal(t, uint16(0), off.Uint16())
}

func TestParseCoilState(t *testing.T) {
	s, err := ParseCoilState(0xFF00)
	require.NoError(t, err)
	assert.Equal(t, CoilOn, s)

	s, err = ParseCoilState(0)
	require.NoError(t, err)
	assert.Equal(t, CoilOff, s)

	for _, v := range []uint16{0x0001, 0xF0FF, 0xFFFF, 0x00FF, 0xFF01} {
		_, err := ParseCoilState(v)
		assert.ErrorIs(t, err, ErrInvalid, "value %#04x", v)
	}
}

func TestParseCoilStateProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint16().Draw(t, "value")
		s, err := ParseCoilState(v)
		if v != 0 && v != 0xFF00 {
			if err == nil {
				t.Fatalf("value %#04x accepted as %v", v, s)
			}
			return
		}
		if err != nil {
			t.Fatalf("value %#04x rejected: %v", v, err)
		}
		if s.Uint16() != v {
			t.Fatalf("value %#04x encoded as %#04x", v, s.Uint16())
		}
	})
}
