package output

import (
	"encoding/json"
	"io"

	"github.com/vertti/depgate/pkg/depcheck"
)

type jsonResult struct {
	Name       string          `json:"name"`
	Status     depcheck.Status `json:"status"`
	Reason     string          `json:"reason,omitempty"`
	ResolvedAs string          `json:"resolved_as,omitempty"`
}

type jsonReport struct {
	Dependencies []jsonResult `json:"dependencies"`
	Missing      int          `json:"missing"`
	OK           bool         `json:"ok"`
}

// WriteJSON writes the report as a single indented JSON document.
func WriteJSON(w io.Writer, r depcheck.Report) error {
	doc := jsonReport{
		Dependencies: make([]jsonResult, 0, len(r.Results)),
		Missing:      r.MissingCount(),
		OK:           r.OK(),
	}
	for _, res := range r.Results {
		doc.Dependencies = append(doc.Dependencies, jsonResult{
			Name:       res.Name,
			Status:     res.Status,
			Reason:     res.Reason(),
			ResolvedAs: res.ResolvedAs,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
