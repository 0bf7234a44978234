package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"feedindia/pkg/types"
)

var exportHeader = []string{"ID", "Donor", "Type", "Item/Amount", "Quantity", "Location", "Status", "Recipient", "Date"}

// DonationsCSV renders donations in admin table order.
func DonationsCSV(donations []*types.Donation) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for _, d := range donations {
		row := []string{
			d.ID,
			d.DonorName,
			string(d.Kind),
			d.ItemOrAmount,
			d.DisplayQuantity(),
			d.Location,
			types.StatusDisplayFor(d.Status).Label,
			d.Recipient,
			d.Date,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write export row %s: %w", d.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}

	return buf.Bytes(), nil
}

func ExportKey(now time.Time) string {
	return fmt.Sprintf("exports/donations-%s.csv", now.UTC().Format("20060102T150405Z"))
}
