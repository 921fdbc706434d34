package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFlagLeavesOtherBitsAlone(t *testing.T) {
	var mask uint16 = 0b1010_0001
	SetFlag(&mask, 1<<2, true)

	assert := assert.New(t)
	assert.Equal(uint16(0b1010_0101), mask)
	assert.True(HasFlag(mask, 1<<2))

	SetFlag(&mask, 1<<2, false)
	assert.Equal(uint16(0b1010_0001), mask)
	assert.False(HasFlag(mask, 1<<2))
	assert.False(HasFlag(mask, 0))
}

func TestGetKeysSorted(t *testing.T) {
	keys := GetKeys(map[uint32]string{3: "c", 1: "a", 2: "b"})
	assert.Equal(t, []uint32{1, 2, 3}, keys)
}

func TestPtrAndDeref(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("x", *Ptr("x"))
	assert.Equal("", Deref[string](nil))
	assert.Equal(5, Deref(Ptr(5)))
}

func TestGatherAllXmlPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.xml", "a.XML", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	paths, err := GatherAllXmlPaths(dir, 0)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{filepath.Join(dir, "a.XML"), filepath.Join(dir, "b.xml")}, paths)

	paths, err = GatherAllXmlPaths(dir, 1)
	assert.NoError(err)
	assert.Len(paths, 1)
}
