package services

import (
	"fmt"

	"github.com/ctabo91/dreamhost-backend/models"
)

// Column rename maps for entities whose JSON field names differ from their
// storage columns. Supplied once per entity, not inline at call sites.
var userColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
}

// BuildUpdate turns a sparse field→value mapping into the SET fragments and
// argument list for a parameterized UPDATE. One "<column> = $N" fragment is
// produced per key, placeholders numbered 1..N with no gaps, and args holds
// the values in the same order. Keys present in columns are renamed to their
// storage column; everything else passes through as-is, values untouched.
//
// The caller owns the WHERE clause and numbers its placeholders starting at
// len(args)+1.
func BuildUpdate(fields map[string]interface{}, columns map[string]string) ([]string, []interface{}, error) {
	if len(fields) == 0 {
		return nil, nil, models.NewBadRequest("no data")
	}

	set := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))
	for field, value := range fields {
		col, ok := columns[field]
		if !ok {
			col = field
		}
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)+1))
		args = append(args, value)
	}
	return set, args, nil
}
