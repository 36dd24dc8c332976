package level

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = 32.0

const flatLayout = `
0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0
0,0,0,0,0,0,0,0,0,0
0,0,9,0,0,0,4,4,0,5
1,1,1,1,1,1,1,1,1,1
`

func TestParseCSV(t *testing.T) {
	lvl, err := ParseCSV("flat", strings.NewReader(flatLayout), ts)
	require.NoError(t, err)

	assert.Equal(t, "flat", lvl.Name)
	assert.Equal(t, 10, lvl.Grid.Cols())
	assert.Equal(t, 5, lvl.Grid.Rows())
	assert.Equal(t, Cell{Col: 2, Row: 3}, lvl.Spawn)
	assert.Equal(t, Spawn, lvl.Grid.KindAt(2, 3))
	assert.True(t, lvl.Grid.IsSolid(0, 4))
	assert.False(t, lvl.Grid.IsSolid(6, 3), "hazard cells are not solid")

	require.Len(t, lvl.Hazards, 2)
	assert.Equal(t, Hazard{Rect: Rect{X: 6 * ts, Y: 3 * ts, W: 2 * ts, H: ts}, Kind: HazardVisible}, lvl.Hazards[0])
	assert.Equal(t, Hazard{Rect: Rect{X: 9 * ts, Y: 3 * ts, W: ts, H: ts}, Kind: HazardInvisible}, lvl.Hazards[1])
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		want   error
	}{
		{"empty", "\n\n", ErrEmptyLayout},
		{"no spawn", "0,0\n1,1", ErrNoSpawn},
		{"two spawns", "9,9\n1,1", ErrMultipleSpawns},
		{"spawn over air", "9,0\n0,1", ErrSpawnNotGrounded},
		{"spawn over hazard", "9,0\n4,1", ErrSpawnNotGrounded},
		{"spawn on bottom row", "1,1\n9,0", ErrSpawnNotGrounded},
		{"unknown code", "9,7\n1,1", ErrUnknownCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(tt.name, strings.NewReader(tt.layout), ts)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseCSVRejectsNonInteger(t *testing.T) {
	_, err := ParseCSV("bad", strings.NewReader("9,x\n1,1"), ts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestSpawnOnPlatformVariants(t *testing.T) {
	for _, floor := range []string{"1", "2", "3"} {
		_, err := ParseCSV("p", strings.NewReader("9\n"+floor), ts)
		assert.NoError(t, err, "floor code %s", floor)
	}
}

func TestRaggedRowsArePadded(t *testing.T) {
	lvl, err := ParseCSV("ragged", strings.NewReader("0,9\n1,1,1,1"), ts)
	require.NoError(t, err)
	assert.Equal(t, 4, lvl.Grid.Cols())
	assert.Equal(t, CodeEmpty, lvl.Grid.CodeAt(3, 0))
}

func TestOutOfBoundsIsEmpty(t *testing.T) {
	lvl, err := ParseCSV("flat", strings.NewReader(flatLayout), ts)
	require.NoError(t, err)

	g := lvl.Grid
	assert.False(t, g.IsSolid(-1, 4))
	assert.False(t, g.IsSolid(10, 4))
	assert.False(t, g.IsSolid(0, 5))
	assert.False(t, g.IsSolid(0, -1))
}

func TestLoopingWrapsColumnsOnly(t *testing.T) {
	lvl, err := ParseCSV("flat", strings.NewReader(flatLayout), ts)
	require.NoError(t, err)

	g := lvl.WithLoop(true).Grid
	assert.True(t, g.IsSolid(10, 4))
	assert.True(t, g.IsSolid(-1, 4))
	assert.Equal(t, 9, g.WrapCol(-1))
	assert.False(t, g.IsSolid(0, 5), "rows never wrap")
	assert.False(t, lvl.Grid.Loops(), "original grid is unchanged")
}

func TestSolidAtWorld(t *testing.T) {
	lvl, err := ParseCSV("flat", strings.NewReader(flatLayout), ts)
	require.NoError(t, err)

	assert.True(t, lvl.Grid.SolidAtWorld(5, 4*ts))
	assert.False(t, lvl.Grid.SolidAtWorld(5, 4*ts-0.001))
	assert.False(t, lvl.Grid.SolidAtWorld(-0.5, 4*ts+1))
}

func TestSpawnBox(t *testing.T) {
	lvl, err := ParseCSV("flat", strings.NewReader(flatLayout), ts)
	require.NoError(t, err)

	box := lvl.SpawnBox(20, 40)
	assert.InDelta(t, 4*ts, box.Bottom(), 1e-9, "bottom sits on the floor top")
	assert.InDelta(t, 2*ts+6, box.X, 1e-9, "centred on spawn tile")
	assert.Equal(t, 20.0, box.W)
	assert.Equal(t, 40.0, box.H)
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: -5, W: 5, H: 5}))
}

const tmxMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="1">
 <tileset firstgid="1" name="codes" tilewidth="32" tileheight="32" tilecount="10" columns="10">
  <image source="codes.png" width="320" height="32"/>
 </tileset>
 <layer id="1" name="layout" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,10,0,5,
2,2,2,2
</data>
 </layer>
</map>
`

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b_flat.csv":  {Data: []byte(flatLayout)},
		"levels/a_small.tmx": {Data: []byte(tmxMap)},
		"levels/readme.txt":  {Data: []byte("ignored")},
	}

	levels, err := LoadAll(fsys, "levels", ts)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	small := levels[0]
	assert.Equal(t, "a_small", small.Name)
	assert.Equal(t, Cell{Col: 1, Row: 1}, small.Spawn)
	assert.True(t, small.Grid.IsSolid(0, 2))
	require.Len(t, small.Hazards, 1)
	assert.Equal(t, HazardVisible, small.Hazards[0].Kind)

	assert.Equal(t, "b_flat", levels[1].Name)

	found, err := Find(levels, "b_flat")
	require.NoError(t, err)
	assert.Same(t, levels[1], found)

	_, err = Find(levels, "missing")
	assert.Error(t, err)
}

func TestLoadAllPropagatesInvalidLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/broken.csv": {Data: []byte("9,0\n0,0")},
	}
	_, err := LoadAll(fsys, "levels", ts)
	assert.ErrorIs(t, err, ErrSpawnNotGrounded)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	fsys := fstest.MapFS{"levels/x.json": {Data: []byte("{}")}}
	_, err := Load(fsys, "levels/x.json", ts)
	assert.Error(t, err)
}
