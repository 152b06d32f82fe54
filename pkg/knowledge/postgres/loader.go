package postgres

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/datafy-ai/go-mentor/pkg/knowledge"
)

// LoadCSV replaces the resource table contents with the rows read from
// CSV, preserving file order.
//
// Expected columns: topic, kind, context, description. A header row is
// detected by its first cell and skipped. Returns the number of
// resources inserted.
func (c *Client) LoadCSV(ctx context.Context, r io.Reader) (int, error) {
	resources, err := parseResourceCSV(r)
	if err != nil {
		return 0, err
	}
	if err := c.Truncate(ctx); err != nil {
		return 0, err
	}
	if err := c.Insert(ctx, resources); err != nil {
		return 0, err
	}
	return len(resources), nil
}

func parseResourceCSV(r io.Reader) ([]knowledge.Resource, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Validate per row, descriptions may be absent

	var resources []knowledge.Resource
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line+1, err)
		}
		line++

		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "topic") {
			continue // Header row
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("CSV line %d: expected at least 3 columns, got %d", line, len(record))
		}

		resource := knowledge.Resource{
			Topic:   strings.TrimSpace(record[0]),
			Kind:    strings.TrimSpace(record[1]),
			Context: strings.TrimSpace(record[2]),
		}
		if len(record) > 3 {
			resource.Description = strings.TrimSpace(record[3])
		}
		resources = append(resources, resource)
	}
	return resources, nil
}
