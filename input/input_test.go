package input_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/input"
)

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, input.Lines("a\r\nb\n\nc\n"))
	assert.Equal(t, []string{"x"}, input.Lines("x"))
	assert.Nil(t, input.Lines(""))
	assert.Nil(t, input.Lines("\n"))
}

func TestBlocks(t *testing.T) {
	got := input.Blocks("1\n2\n\n3\n\n\n4\n5\n")
	assert.Equal(t, [][]string{{"1", "2"}, {"3"}, {"4", "5"}}, got)
	assert.Nil(t, input.Blocks(""))
}

func TestInts(t *testing.T) {
	got, err := input.Ints[int]("x=-3, y=14 .. 7,-0")
	require.NoError(t, err)
	assert.Equal(t, []int{-3, 14, 7, 0}, got)

	small, err := input.Ints[int8]("100 -128")
	require.NoError(t, err)
	assert.Equal(t, []int8{100, -128}, small)

	_, err = input.Ints[int8]("300")
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestAtoi(t *testing.T) {
	n, err := input.Atoi[int64](" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	u, err := input.Atoi[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u)

	_, err = input.Atoi[uint8]("-1")
	assert.Error(t, err)

	_, err = input.Atoi[uint8]("256")
	assert.ErrorIs(t, err, strconv.ErrRange)

	i16, err := input.Atoi[int16]("-32768")
	require.NoError(t, err)
	assert.Equal(t, int16(-32768), i16)

	_, err = input.Atoi[int16]("-32769")
	assert.ErrorIs(t, err, strconv.ErrRange)

	big, err := input.Atoi[int64]("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), big)

	_, err = input.Atoi[int]("abc")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestDigits(t *testing.T) {
	d, err := input.Digits("30373")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 3, 7, 3}, d)

	_, err = input.Digits("12a")
	assert.ErrorIs(t, err, input.ErrNotDigit)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "2022"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2022", "day06.txt"), []byte("mjqjpqmgbljsphdztnvjfqwrcgsmlb\n"), 0o644))

	s, err := input.Load(dir, 2022, 6)
	require.NoError(t, err)
	assert.Equal(t, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n", s)

	_, err = input.Load(dir, 2022, 7)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "2021", "day05.txt"), input.Path("inputs", 2021, 5))
}
