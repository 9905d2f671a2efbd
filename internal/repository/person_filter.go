package repository

import (
	"fmt"
	"strings"
)

// PersonSearchLimit caps student and teacher search results.
const PersonSearchLimit = 50

// PersonFilter is the only filter shape student and teacher searches accept.
//
// Name is split on whitespace. A single token matches first OR last name,
// several tokens match the first token against first_name AND the last token
// against last_name. Matching is a case-insensitive literal substring.
// ClassroomID is an exact match and is only honoured for students.
type PersonFilter struct {
	Name        string
	ClassroomID string
}

// where renders the filter as a WHERE clause with positional arguments.
func (f PersonFilter) where(withClassroom bool) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	parts := strings.Fields(f.Name)
	switch len(parts) {
	case 0:
	case 1:
		p := next(containsPattern(parts[0]))
		conds = append(conds, fmt.Sprintf("(first_name ILIKE %s OR last_name ILIKE %s)", p, p))
	default:
		conds = append(conds, fmt.Sprintf("first_name ILIKE %s", next(containsPattern(parts[0]))))
		conds = append(conds, fmt.Sprintf("last_name ILIKE %s", next(containsPattern(parts[len(parts)-1]))))
	}

	if withClassroom && f.ClassroomID != "" {
		conds = append(conds, fmt.Sprintf("classroom_id = %s", next(f.ClassroomID)))
	}

	if len(conds) == 0 {
		return "", nil
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
