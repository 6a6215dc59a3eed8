// Package catalog ships the authored objective sets for the campaign
// levels as embedded JSON, validated once on first use.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/objective"
	apperrors "github.com/SunpowderDev/Dice-Chess-Project-sub001/internal/platform/errors"
)

//go:embed levels/*.json
var levelFS embed.FS

type levelFile struct {
	LevelID    string                 `json:"levelId"`
	Objectives []objective.Definition `json:"objectives"`
}

var (
	loadOnce sync.Once
	loadErr  error
	byLevel  map[string][]objective.Definition
)

func load() error {
	loadOnce.Do(func() {
		byLevel = map[string][]objective.Definition{}

		entries, err := fs.ReadDir(levelFS, "levels")
		if err != nil {
			loadErr = fmt.Errorf("read embedded levels: %w", err)
			return
		}
		for _, entry := range entries {
			content, err := fs.ReadFile(levelFS, "levels/"+entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("read level file %s: %w", entry.Name(), err)
				return
			}
			var file levelFile
			if err := json.Unmarshal(content, &file); err != nil {
				loadErr = apperrors.Wrap(
					apperrors.CodeDefinitionDecode,
					fmt.Sprintf("decode level file %s", entry.Name()),
					err,
				)
				return
			}
			if err := Validate(file.LevelID, file.Objectives); err != nil {
				loadErr = fmt.Errorf("level file %s: %w", entry.Name(), err)
				return
			}
			byLevel[file.LevelID] = file.Objectives
		}
	})
	return loadErr
}

// Validate checks an authored level objective set: a level id, unique
// non-empty objective ids.
func Validate(levelID string, defs []objective.Definition) error {
	if strings.TrimSpace(levelID) == "" {
		return apperrors.New(apperrors.CodeDefinitionEmptyLevel, "level id is required")
	}
	seen := map[string]struct{}{}
	for _, def := range defs {
		if strings.TrimSpace(def.ID) == "" {
			return apperrors.WithMetadata(
				apperrors.CodeDefinitionEmptyID,
				"objective id is required",
				map[string]string{"LevelID": levelID},
			)
		}
		if _, dup := seen[def.ID]; dup {
			return apperrors.WithMetadata(
				apperrors.CodeDefinitionDuplicateID,
				fmt.Sprintf("duplicate objective id %q", def.ID),
				map[string]string{"LevelID": levelID, "ObjectiveID": def.ID},
			)
		}
		seen[def.ID] = struct{}{}
	}
	return nil
}

// Levels lists the level ids present in the catalog, sorted.
func Levels() ([]string, error) {
	if err := load(); err != nil {
		return nil, err
	}
	levels := make([]string, 0, len(byLevel))
	for levelID := range byLevel {
		levels = append(levels, levelID)
	}
	sort.Strings(levels)
	return levels, nil
}

// LevelObjectives returns the authored objective set for one level.
func LevelObjectives(levelID string) ([]objective.Definition, error) {
	if err := load(); err != nil {
		return nil, err
	}
	defs, ok := byLevel[levelID]
	if !ok {
		return nil, apperrors.WithMetadata(
			apperrors.CodeNotFound,
			fmt.Sprintf("no objectives for level %q", levelID),
			map[string]string{"LevelID": levelID},
		)
	}
	out := make([]objective.Definition, len(defs))
	copy(out, defs)
	return out, nil
}
