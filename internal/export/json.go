package export

import (
	"encoding/json"
	"io"
)

func WriteJSON(w io.Writer, snap Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}
