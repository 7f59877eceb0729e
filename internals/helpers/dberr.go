// file: internals/helpers/dberr.go
package helper

import "strings"

// IsDuplicateKeyError reports whether err comes from a unique constraint.
// Substring matching keeps it portable across the postgres and sqlite drivers.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}
