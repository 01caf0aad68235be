package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
)

// Export renders the document for file interchange, stamped with the export
// time. The stamp is informational only; Import ignores it.
func Export(doc model.Document, now time.Time) ([]byte, error) {
	doc.Version = model.CurrentVersion
	doc.ExportedAtISO = now.Format(time.RFC3339)
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return append(payload, '\n'), nil
}

// Import parses an exported payload back into a canonical document,
// degrading malformed fields to defaults.
func Import(raw []byte) (model.Document, error) {
	return Normalize(raw)
}
