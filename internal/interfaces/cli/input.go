package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// InputSource fuente de líneas del operador. Devuelve io.EOF cuando no hay más entrada.
type InputSource interface {
	ReadLine() (string, error)
}

// ReaderInput InputSource sobre cualquier io.Reader (stdin en producción, strings.Reader en tests).
// No limita el largo de la línea: una respuesta enorme llega entera al validador.
type ReaderInput struct {
	r *bufio.Reader
}

// NewReaderInput envuelve r leyendo línea a línea.
func NewReaderInput(r io.Reader) *ReaderInput {
	return &ReaderInput{r: bufio.NewReader(r)}
}

// ReadLine devuelve la siguiente línea sin el salto final. Una última línea sin '\n' también se entrega.
func (s *ReaderInput) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
