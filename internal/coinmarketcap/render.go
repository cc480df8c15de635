package coinmarketcap

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"nibblesprice/internal/provider"
)

// Render frames body for the variant. The body only has to be a well-formed
// JSON object; its fields are not checked against any schema. The payload is
// re-indented from the raw bytes, so every field and numeric literal comes
// through exactly as the upstream sent it.
func Render(v Variant, body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", provider.NewDecodeError(errors.New("response body is not a JSON object"))
	}
	if !json.Valid(trimmed) {
		return "", provider.NewDecodeError(errors.New("response body is not valid JSON"))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, trimmed, "", "  "); err != nil {
		return "", provider.NewDecodeError(err)
	}

	var b strings.Builder
	b.WriteString(v.Preamble)
	b.WriteString("\n\n")
	b.Write(pretty.Bytes())
	if v.Guidance != "" {
		b.WriteString("\n\n")
		b.WriteString(v.Guidance)
	}

	return b.String(), nil
}
