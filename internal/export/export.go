// Package export serializes engine state to JSON and CSV and reads gadget
// exports back in. The formats are stable by convention, not durable
// contracts.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/domain/scoring"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
)

// Version stamps every export document.
const Version = 2

// DefaultShortcutLimit bounds the shortcut export window to the most
// recent entries.
const DefaultShortcutLimit = 1000

// GadgetRecord is the serialized form of one gadget.
type GadgetRecord struct {
	GadgetID     int64     `json:"gadget_id"`
	Owner        string    `json:"owner"`
	GadgetHash   string    `json:"gadget_hash"`
	Category     string    `json:"category"`
	RegisteredAt time.Time `json:"registered_at"`
	Active       bool      `json:"active"`
	ClaimCount   int64     `json:"claim_count"`
}

// GadgetExport is the gadget export document.
type GadgetExport struct {
	Version    int            `json:"version"`
	Domain     string         `json:"domain"`
	ExportedAt time.Time      `json:"exported_at"`
	Gadgets    []GadgetRecord `json:"gadgets"`
}

// ShortcutRecord is the serialized form of one shortcut.
type ShortcutRecord struct {
	ShortcutID int64     `json:"shortcut_id"`
	GadgetID   int64     `json:"gadget_id"`
	Claimer    string    `json:"claimer"`
	ClaimedAt  time.Time `json:"claimed_at"`
	ScoreAdded int64     `json:"score_added"`
}

// ShortcutExport is the shortcut export document, windowed to the most
// recent entries.
type ShortcutExport struct {
	Version   int              `json:"version"`
	Shortcuts []ShortcutRecord `json:"shortcuts"`
}

func gadgetRecord(g model.Gadget) GadgetRecord {
	return GadgetRecord{
		GadgetID:     g.ID,
		Owner:        g.Owner,
		GadgetHash:   g.Hash,
		Category:     g.Category.String(),
		RegisteredAt: g.RegisteredAt,
		Active:       g.Active,
		ClaimCount:   g.ClaimCount,
	}
}

// Gadgets builds the gadget export document from engine state.
func Gadgets(eng *engine.Engine, clock scoring.Clock) GadgetExport {
	all := eng.Gadgets()
	records := make([]GadgetRecord, len(all))
	for i, g := range all {
		records[i] = gadgetRecord(g)
	}
	return GadgetExport{
		Version:    Version,
		Domain:     engine.DomainSeed,
		ExportedAt: clock.Now(),
		Gadgets:    records,
	}
}

// Shortcuts builds the shortcut export document with up to limit of the
// most recent shortcuts.
func Shortcuts(eng *engine.Engine, limit int) ShortcutExport {
	if limit <= 0 {
		limit = DefaultShortcutLimit
	}
	recent := eng.RecentShortcuts(limit)
	records := make([]ShortcutRecord, len(recent))
	for i, s := range recent {
		records[i] = ShortcutRecord{
			ShortcutID: s.ID,
			GadgetID:   s.GadgetID,
			Claimer:    s.Claimer,
			ClaimedAt:  s.ClaimedAt,
			ScoreAdded: s.ScoreAdded,
		}
	}
	return ShortcutExport{Version: Version, Shortcuts: records}
}

// WriteGadgetsJSON writes the gadget export document to w.
func WriteGadgetsJSON(w io.Writer, eng *engine.Engine, clock scoring.Clock) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Gadgets(eng, clock))
}

// WriteShortcutsJSON writes the shortcut export document to w.
func WriteShortcutsJSON(w io.Writer, eng *engine.Engine, limit int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Shortcuts(eng, limit))
}

// gadgetCSVHeader lists the CSV columns in export order.
var gadgetCSVHeader = []string{"gadget_id", "owner", "gadget_hash", "category", "registered_at", "active", "claim_count"}

// WriteGadgetsCSV writes one row per gadget with proper quoting.
func WriteGadgetsCSV(w io.Writer, eng *engine.Engine) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(gadgetCSVHeader); err != nil {
		return err
	}
	for _, g := range eng.Gadgets() {
		row := []string{
			strconv.FormatInt(g.ID, 10),
			g.Owner,
			g.Hash,
			g.Category.String(),
			g.RegisteredAt.UTC().Format(time.RFC3339),
			strconv.FormatBool(g.Active),
			strconv.FormatInt(g.ClaimCount, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportReport summarizes a gadget import.
type ImportReport struct {
	Imported int
	Skipped  int
}

// importedOwnerFallback is used when an entry carries no owner.
const importedOwnerFallback = "imported"

// ImportGadgets re-registers gadgets from an export document, fee waived.
// Malformed entries are skipped and counted; there is no atomicity across
// the batch.
func ImportGadgets(eng *engine.Engine, r io.Reader) (ImportReport, error) {
	var doc struct {
		Gadgets []json.RawMessage `json:"gadgets"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ImportReport{}, err
	}

	var report ImportReport
	for _, raw := range doc.Gadgets {
		var rec GadgetRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			report.Skipped++
			continue
		}
		category := model.Category(rec.Category)
		if !category.Valid() {
			report.Skipped++
			continue
		}
		owner := rec.Owner
		if owner == "" {
			owner = importedOwnerFallback
		}
		if _, err := eng.ImportGadget(owner, rec.GadgetHash, category); err != nil {
			report.Skipped++
			continue
		}
		report.Imported++
	}
	return report, nil
}
