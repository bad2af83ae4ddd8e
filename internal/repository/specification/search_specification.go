package specification

import (
	"strings"

	"gorm.io/gorm"
)

// Search matches Query as a case-insensitive substring of any of Fields.
// LOWER/LIKE keeps it working on both postgres and sqlite.
type Search struct {
	Fields []string
	Query  string
}

func (s Search) Apply(db *gorm.DB) *gorm.DB {
	q := strings.TrimSpace(s.Query)
	if q == "" || len(s.Fields) == 0 {
		return db
	}
	pattern := "%" + strings.ToLower(q) + "%"
	clauses := make([]string, 0, len(s.Fields))
	args := make([]interface{}, 0, len(s.Fields))
	for _, f := range s.Fields {
		clauses = append(clauses, "LOWER("+f+") LIKE ?")
		args = append(args, pattern)
	}
	return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
}
