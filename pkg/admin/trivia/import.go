package trivia

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/xeipuuv/gojsonschema"
)

const maxSchemaErrors = 5

//go:embed import_schema.json
var importSchemaJSON []byte

var importSchema *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(importSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("trivia import schema: %v", err))
	}
	importSchema = s
}

// ParseImportFile checks the file against the import schema and decodes it.
// Structural problems fail the whole file; per-question rules are checked by
// the caller row by row.
func ParseImportFile(data []byte) (*dto.TriviaImportFile, error) {
	if !json.Valid(data) {
		return nil, apperror.Field("file", "must be a JSON document")
	}

	res, err := importSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, apperror.Field("file", err.Error())
	}
	if !res.Valid() {
		var msgs []string
		for i, e := range res.Errors() {
			if i >= maxSchemaErrors {
				break
			}
			msgs = append(msgs, e.String())
		}
		return nil, apperror.Field("file", strings.Join(msgs, "; "))
	}

	var file dto.TriviaImportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperror.Field("file", err.Error())
	}
	return &file, nil
}

// describe flattens a row error into the single message stored in the result.
func describe(err error) string {
	fields := apperror.Fields(err)
	if fields == nil {
		return err.Error()
	}
	return strings.TrimPrefix(err.Error(), "validation failed: ")
}
