package surface

import (
	"encoding/json"
	"io"

	"github.com/creditscope/creditscope/pkg/decision"
)

// JSONRenderer marshals a Decision to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, d *decision.Decision) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
