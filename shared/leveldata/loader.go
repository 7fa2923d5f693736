package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	layerCollision   = "collision"
	groupSolids      = "Solids"
	groupPlayerSpawn = "PlayerSpawn"
	groupCrates      = "Crates"
	groupPlatforms   = "FloatingPlatforms"
	groupDeadZones   = "DeadZones"
	propSurfaces     = "surfaces"
	propShape        = "shape"
	shapeCircle      = "circle"
	propSpawnIndex   = "spawnIndex"
	propLeader       = "leader"
	propSize         = "size"
	propPriority     = "priority"
	propDX           = "dx"
	propDY           = "dy"
	propSeconds      = "seconds"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	parseTiles(levelMap, level)

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case groupSolids:
				level.Solids = append(level.Solids, parseSolid(o))
			case groupPlayerSpawn:
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(propSpawnIndex),
				})
			case groupCrates:
				size := o.Properties.GetFloat(propSize)
				if size == 0 {
					size = o.Width
				}
				level.Crates = append(level.Crates, CrateSpawn{
					X:        o.X,
					Y:        o.Y,
					Size:     size,
					Leader:   o.Properties.GetString(propLeader),
					Priority: o.Properties.GetInt(propPriority),
				})
			case groupPlatforms:
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Name:    o.Name,
					X:       o.X,
					Y:       o.Y,
					W:       o.Width,
					H:       o.Height,
					DX:      o.Properties.GetFloat(propDX),
					DY:      o.Properties.GetFloat(propDY),
					Seconds: o.Properties.GetFloat(propSeconds),
				})
			case groupDeadZones:
				level.DeadZones = append(level.DeadZones, Area{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	if len(level.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	sort.SliceStable(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// parseTiles turns every tile of the collision layer into a solid rect. The
// tileset tile may restrict its solid sides with a surfaces property.
func parseTiles(levelMap *tiled.Map, level *Level) {
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != layerCollision {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var surfaces string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					surfaces = tilesetTile.Properties.GetString(propSurfaces)
				}

				level.Solids = append(level.Solids, Solid{
					Shape:    ShapeRect,
					X:        float64(x) * tileW,
					Y:        float64(y) * tileH,
					W:        tileW,
					H:        tileH,
					Surfaces: surfaces,
				})
			}
		}
		break
	}
}

func parseSolid(o *tiled.Object) Solid {
	s := Solid{
		Shape:    ShapeRect,
		X:        o.X,
		Y:        o.Y,
		W:        o.Width,
		H:        o.Height,
		Surfaces: o.Properties.GetString(propSurfaces),
	}

	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		s.Shape = ShapePolygon
		for _, p := range *o.Polygons[0].Points {
			s.Points = append(s.Points, Point{X: p.X, Y: p.Y})
		}
		return s
	}

	shape := o.Properties.GetString(propShape)
	if shape == "" {
		shape = o.Class
	}
	if shape == shapeCircle {
		s.Shape = ShapeCircle
		s.Radius = o.Width / 2
		s.X = o.X + o.Width/2
		s.Y = o.Y + o.Height/2
	}
	return s
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
