package output

import (
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/depgate/pkg/depcheck"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, reset = "", "", ""
	}
}

// PrintReport writes one line per missing dependency, or a single
// confirmation line when nothing is missing.
func PrintReport(w io.Writer, r depcheck.Report) error {
	if r.OK() {
		_, err := fmt.Fprintf(w, "%s✔%s all required dependencies are present (%d checked)\n",
			green, reset, len(r.Results))
		return err
	}
	for _, res := range r.Missing() {
		if _, err := fmt.Fprintf(w, "%s⚠%s missing: %s\n", yellow, reset, res.Name); err != nil {
			return err
		}
	}
	return nil
}
