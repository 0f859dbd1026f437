package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// convertSurrealID converts a SurrealDB record ID (which may be a complex
// object depending on the driver codec) to its "table:id" string form.
func convertSurrealID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
		return ""
	case map[string]interface{}:
		tb := ""
		idPart := ""
		if t, ok := v["tb"].(string); ok {
			tb = t
		}
		if inner, ok := v["id"]; ok {
			if s, ok := inner.(string); ok {
				idPart = s
			} else {
				idPart = fmt.Sprintf("%v", inner)
			}
		}
		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
		return idPart
	}
	return fmt.Sprintf("%v", id)
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getBool extracts a bool value from a map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	// SurrealDB may return 0/1 for flags seeded as integers
	if v, ok := m[key].(float64); ok {
		return v != 0
	}
	if v, ok := m[key].(int64); ok {
		return v != 0
	}
	return false
}

// getTime extracts a time value from a map, handling the formats the driver
// may hand back (RFC 3339 strings, time.Time, CustomDateTime).
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case time.Time:
		return v
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

// extractRows unwraps the driver's {status, result} response envelope into a
// flat slice of row maps.
func extractRows(result []interface{}) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0)
	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					if row, ok := item.(map[string]interface{}); ok {
						rows = append(rows, row)
					}
				}
				continue
			}
		}
		if row, ok := res.(map[string]interface{}); ok {
			rows = append(rows, row)
		}
	}
	return rows
}
