package level

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// LayoutLayer is the tile layer read from TMX maps. Maps without it fall
// back to their first tile layer.
const LayoutLayer = "layout"

// LoadTMX parses a Tiled map. A tile's cell code is its tileset-local ID,
// unless the tileset tile carries a "code" property.
func LoadTMX(fsys fs.FS, tmxPath string, tileSize float64) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if float64(levelMap.TileWidth) != tileSize || float64(levelMap.TileHeight) != tileSize {
		return nil, fmt.Errorf("load TMX %s: tiles are %dx%d, configured tile size is %v",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight, tileSize)
	}

	layer := layoutLayer(levelMap)
	if layer == nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, ErrEmptyLayout)
	}

	rows := make([][]Code, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		rows[y] = make([]Code, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			idx := y*levelMap.Width + x
			if idx >= len(layer.Tiles) {
				continue
			}
			code, err := tileCode(layer.Tiles[idx])
			if err != nil {
				return nil, fmt.Errorf("level %s: cell (%d,%d): %w", tmxPath, x, y, err)
			}
			rows[y][x] = code
		}
	}
	return FromCodes(stem(tmxPath), rows, tileSize)
}

func layoutLayer(m *tiled.Map) *tiled.Layer {
	for _, layer := range m.Layers {
		if layer.Name == LayoutLayer {
			return layer
		}
	}
	if len(m.Layers) > 0 {
		return m.Layers[0]
	}
	return nil
}

func tileCode(tile *tiled.LayerTile) (Code, error) {
	if tile == nil || tile.IsNil() {
		return CodeEmpty, nil
	}
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if raw := tilesetTile.Properties.GetString("code"); raw != "" {
				v, err := strconv.Atoi(raw)
				if err != nil {
					return CodeEmpty, fmt.Errorf("code property %q is not an integer", raw)
				}
				return Code(v), nil
			}
		}
	}
	return Code(tile.ID), nil
}
