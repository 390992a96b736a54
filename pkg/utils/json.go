package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson sérialise une valeur en JSON indenté pour les journaux de debug.
// N'échoue jamais : une valeur insérialisable donne une chaîne vide, un JSON
// brut non indentable est rendu tel quel.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		marshalled, err := json.Marshal(in)
		if err != nil {
			return ""
		}
		raw = marshalled
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
