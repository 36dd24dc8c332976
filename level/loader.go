package level

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Load reads a single .csv or .tmx layout from fsys.
func Load(fsys fs.FS, p string, tileSize float64) (*Level, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".csv":
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", p, err)
		}
		defer f.Close()
		return ParseCSV(stem(p), f, tileSize)
	case ".tmx":
		return LoadTMX(fsys, p, tileSize)
	}
	return nil, fmt.Errorf("level %s: unsupported format %q", p, path.Ext(p))
}

// LoadAll discovers every .csv and .tmx file in dir within fsys and returns
// the levels sorted by name. Any invalid layout fails the whole load.
func LoadAll(fsys fs.FS, dir string, tileSize float64) ([]*Level, error) {
	var matches []string
	for _, pattern := range []string{"*.csv", "*.tmx"} {
		m, err := fs.Glob(fsys, path.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .csv or .tmx files found in %s", dir)
	}

	levels := make([]*Level, 0, len(matches))
	for _, p := range matches {
		lvl, err := Load(fsys, p, tileSize)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels, nil
}

// Find returns the level called name, or the first level when name is empty.
func Find(levels []*Level, name string) (*Level, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels loaded")
	}
	if name == "" {
		return levels[0], nil
	}
	for _, lvl := range levels {
		if lvl.Name == name {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("level %q not found", name)
}

func stem(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
