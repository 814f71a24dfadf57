package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mcikids/portal/common"
	"github.com/mcikids/portal/models"
)

// ExportJSON renders the snapshot as a pretty-printed backup document and
// returns it with the download filename for today.
func ExportJSON(snap *models.Snapshot) ([]byte, string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("marshal backup: %w", err)
	}
	name := fmt.Sprintf("mci_kids_backup_%s.json", time.Now().Format("2006-01-02"))
	return data, name, nil
}

// ImportJSON parses file contents as a backup document. The shape is strict:
// unknown fields fail with common.ErrMalformed and nothing is applied.
// Confirming the destructive replacement with the user is the caller's job.
func ImportJSON(data []byte) (*models.Snapshot, error) {
	snap := models.NewSnapshot()
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformed, err)
	}
	return snap, nil
}
