package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tbranton/whisperwood/pkg/catalog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <catalog.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &CatalogValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog file is valid!")
}

type CatalogValidator struct {
	errors []string
}

func (v *CatalogValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("catalog file must have .json extension: %s", baseName)
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer f.Close()

	c, err := catalog.Load(f)
	if err != nil {
		return fmt.Errorf("file %s failed to load: %w", filename, err)
	}

	// Cross-reference checks live in the catalog package itself.
	if err := c.Validate(); err != nil {
		return fmt.Errorf("file %s failed validation: %w", filename, err)
	}

	v.errors = nil
	v.lintIDs(c)

	if len(v.errors) > 0 {
		return fmt.Errorf("lint errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

// lintIDs enforces the lowercase snake_case ID convention across the
// whole catalog.
func (v *CatalogValidator) lintIDs(c *catalog.Catalog) {
	v.validateIDFormat("start location ID", c.StartLocationID)

	for id := range c.Items {
		v.validateIDFormat("item ID", id)
	}
	for id := range c.Enemies {
		v.validateIDFormat("enemy ID", id)
	}
	for id, loc := range c.Locations {
		v.validateIDFormat("location ID", id)
		for _, exit := range loc.Exits {
			v.validateIDFormat("exit location ID", exit.LocationID)
		}
	}
	for id, npc := range c.NPCs {
		v.validateIDFormat("NPC ID", id)
		for stageID := range npc.Dialogue {
			v.validateIDFormat("dialogue stage ID", stageID)
		}
	}
	for id := range c.Quests {
		v.validateIDFormat("quest ID", id)
	}
}

func (v *CatalogValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *CatalogValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
