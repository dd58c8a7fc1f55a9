package words

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed data/words.json
var embeddedJSON []byte

// embeddedReader returns a fresh reader over the compiled-in reference
// lookup table artifact, consumed once per process by DefaultTable.
func embeddedReader() io.Reader {
	return bytes.NewReader(embeddedJSON)
}
