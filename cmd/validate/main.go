package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/content"
	"github.com/jwebster45206/adventure-engine/pkg/save"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <save.json|world.yaml>...\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		validator := &SaveValidator{pack: content.MustDefault()}
		if err := validator.validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		for _, w := range validator.warnings {
			fmt.Println(w)
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

// SaveValidator checks save documents and world content files.
type SaveValidator struct {
	pack     *content.Pack
	errors   []string
	warnings []string
}

func (v *SaveValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil
	v.warnings = nil

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if _, err := content.Parse(data); err != nil {
			return fmt.Errorf("file %s is not valid world content: %w", filename, err)
		}
		return nil
	case save.Extension:
		return v.validateSave(filepath.Base(filename), data)
	default:
		return fmt.Errorf("unsupported file type %s: expected .json save or .yaml content", filepath.Base(filename))
	}
}

func (v *SaveValidator) validateSave(baseName string, data []byte) error {
	if !isValidSaveFilename(baseName) {
		v.addWarning(fmt.Sprintf("save filename '%s' does not follow <player>_YYYYMMDD_HHMMSS.json", baseName))
	}

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", baseName)
	}

	var doc save.Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", baseName, err)
	}

	if err := doc.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			v.addError(strings.TrimPrefix(line, save.ErrCorruptSave.Error()+": "))
		}
	}
	v.validateItems(doc)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", baseName, strings.Join(v.errors, "\n"))
	}
	return nil
}

// validateItems warns about items the catalog does not know. They load fine
// but have no use effect.
func (v *SaveValidator) validateItems(doc save.Document) {
	for _, name := range doc.Player.Inventory {
		if _, ok := v.pack.Catalog.Lookup(name); !ok {
			v.addWarning(fmt.Sprintf("inventory item '%s' is not in the item catalog", name))
		}
	}
	for locName, loc := range doc.World.Locations {
		for _, it := range loc.Items {
			if _, ok := v.pack.Catalog.Lookup(it.Name); !ok {
				v.addWarning(fmt.Sprintf("item '%s' in %s is not in the item catalog", it.Name, locName))
			}
		}
	}
	for flag := range doc.World.State {
		if !knownFlags[flag] {
			v.addWarning(fmt.Sprintf("state flag '%s' is not set by any built-in location", flag))
		}
	}
}

func (v *SaveValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *SaveValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  ! "+msg)
}

var knownFlags = map[string]bool{
	world.FlagHermitQuestAccepted:      true,
	world.FlagHermitQuestCompleted:     true,
	world.FlagMountainPeakReached:      true,
	world.FlagForestClearingDiscovered: true,
	world.FlagForestRiverDiscovered:    true,
	world.FlagUndergroundLake:          true,
	world.FlagCaveCreatureHeard:        true,
	world.FlagHiddenPassage:            true,
	world.FlagAncientWriting:           true,
}

var validSaveFilenameRegex = regexp.MustCompile(`^.+_\d{8}_\d{6}(_\d+)?\.json$`)

func isValidSaveFilename(name string) bool {
	return validSaveFilenameRegex.MatchString(name)
}
