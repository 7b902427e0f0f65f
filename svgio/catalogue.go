package svgio

import (
	"encoding/json"
	"io"
)

// LoadCatalogue reads the persisted colour/speed catalogue (spec §6
// "Persisted catalogue") from r.
func LoadCatalogue(r io.Reader) (Catalogue, error) {
	var c Catalogue
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Catalogue{}, ErrInvalidCatalogue
	}
	return c, nil
}

// SaveCatalogue writes c back out unchanged except for whatever the
// caller mutated in Colors, round-tripping Speeds/LastUsed untouched
// since they belong to the UI (spec §6).
func SaveCatalogue(w io.Writer, c Catalogue) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
