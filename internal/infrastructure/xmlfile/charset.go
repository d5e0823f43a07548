package xmlfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const utf8Declaration = `version="1.0" encoding="UTF-8"`

// charsetReader decodifica archivos editados a mano con codificaciones heredadas
// (cirílico windows-1251 / KOI8-R, latin-1). La reescritura siempre es UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return input, nil
	case "windows-1251", "cp1251":
		return transform.NewReader(input, charmap.Windows1251.NewDecoder()), nil
	case "koi8-r":
		return transform.NewReader(input, charmap.KOI8R.NewDecoder()), nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("codificación no soportada: %s", label)
}

// setUTF8Declaration deja una única declaración <?xml ...?> con encoding UTF-8 al inicio.
func setUTF8Declaration(doc *etree.Document) {
	for _, tok := range doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			pi.Inst = utf8Declaration
			return
		}
	}
	doc.InsertChildAt(0, etree.NewProcInst("xml", utf8Declaration))
}
