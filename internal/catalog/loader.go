package catalog

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/osse101/LuckyDraw_Go/internal/domain"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
	"github.com/osse101/LuckyDraw_Go/internal/validation"
)

//go:embed defaults/*
var defaultsFS embed.FS

var schemas = validation.NewSchemaValidator()

// Load reads the prize catalog and roster. An empty path selects the bundled default.
func Load(ctx context.Context, prizesPath, rosterPath string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	prizeData, err := readOrDefault(ctx, prizesPath, defaultPrizesFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadPrizes, err)
	}
	prizes, err := ParsePrizes(prizeData)
	if err != nil {
		return nil, err
	}

	rosterData, err := readOrDefault(ctx, rosterPath, defaultRosterFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextReadRoster, err)
	}
	raw, err := ParseRoster(rosterData)
	if err != nil {
		return nil, err
	}

	names, dups, blanks := NormalizeRoster(raw)
	if dups > 0 {
		log.Warn(LogMsgDuplicatesDropped, "count", dups)
	}
	if blanks > 0 {
		log.Warn(LogMsgEmptyNamesDropped, "count", blanks)
	}

	c := &Catalog{prizes: prizes, roster: names}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded, "prizes", c.Len(), "rounds", len(c.Rounds()), "participants", c.RosterSize())
	return c, nil
}

func readOrDefault(ctx context.Context, path, fallback string) ([]byte, error) {
	if path == "" {
		logger.FromContext(ctx).Debug(LogMsgUsingDefaults, "file", fallback)
		return defaultsFS.ReadFile(fallback)
	}
	return os.ReadFile(path)
}

// ParsePrizes decodes a JSON prize array after checking it against the bundled schema.
func ParsePrizes(data []byte) ([]domain.Prize, error) {
	if err := schemas.ValidateBytes(data, validation.SchemaPrizes); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSchemaPrizes, err)
	}

	var prizes []domain.Prize
	if err := json.Unmarshal(data, &prizes); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParsePrizes, err)
	}
	return prizes, nil
}

// ParseRoster accepts a JSON array of names or whitespace-separated plain text.
func ParseRoster(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, domain.ErrEmptyRoster
	}

	if trimmed[0] != '[' {
		return strings.Fields(string(trimmed)), nil
	}

	if err := schemas.ValidateBytes(trimmed, validation.SchemaRoster); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSchemaRoster, err)
	}
	var names []string
	if err := json.Unmarshal(trimmed, &names); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextParseRoster, err)
	}
	return names, nil
}

// NormalizeRoster folds full-width forms, applies NFC and trims each name, then
// drops blanks and later duplicates while keeping first-seen order.
func NormalizeRoster(names []string) (out []string, duplicates, blanks int) {
	seen := make(map[string]struct{}, len(names))
	out = make([]string, 0, len(names))
	for _, name := range names {
		n := strings.TrimSpace(norm.NFC.String(width.Fold.String(name)))
		if n == "" {
			blanks++
			continue
		}
		if _, ok := seen[n]; ok {
			duplicates++
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out, duplicates, blanks
}
