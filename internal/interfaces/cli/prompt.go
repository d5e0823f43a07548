package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/validator"
)

// CancelToken entrada literal que aborta el comando en cualquier prompt.
const CancelToken = "cancel"

// State estado de la recolección de un campo.
type State int

const (
	StatePrompting State = iota
	StateValidating
	StateAccepted
	StateRejected
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateValidating:
		return "validating"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	case StateCanceled:
		return "canceled"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Prompt describe un campo a recolectar.
type Prompt struct {
	Label string
	// Validate regla del campo; nil acepta cualquier valor.
	Validate func(value string) validator.Result
	// AllowEmpty acepta la línea vacía sin validar (fin de cambios en update, listado sin orden).
	AllowEmpty bool
}

// fieldMachine máquina de estados de un campo: Prompting → Validating → {Accepted, Rejected→Prompting, Canceled}.
// No hace E/S, así se prueba sin entrada interactiva.
type fieldMachine struct {
	prompt Prompt
	state  State
	value  string
	result validator.Result
}

func newFieldMachine(p Prompt) *fieldMachine {
	return &fieldMachine{prompt: p, state: StatePrompting}
}

// feed consume una línea (o el fin de entrada) y avanza hasta un estado terminal o Rejected.
func (m *fieldMachine) feed(line string, eof bool) State {
	if m.state != StatePrompting {
		return m.state
	}
	value := validator.Normalize(strings.TrimSpace(line))
	if eof || value == CancelToken {
		m.state = StateCanceled
		return m.state
	}
	m.state = StateValidating
	m.value = value
	switch {
	case value == "" && m.prompt.AllowEmpty:
		m.result = validator.Result{Valid: true}
	case m.prompt.Validate == nil:
		m.result = validator.Result{Valid: true}
	default:
		m.result = m.prompt.Validate(value)
	}
	if m.result.Valid {
		m.state = StateAccepted
	} else {
		m.state = StateRejected
	}
	return m.state
}

// retry vuelve de Rejected a Prompting.
func (m *fieldMachine) retry() {
	if m.state == StateRejected {
		m.state = StatePrompting
		m.value = ""
	}
}

// Collector ejecuta prompts contra una fuente de entrada y escribe en out.
type Collector struct {
	in  InputSource
	out io.Writer
}

// NewCollector construye el recolector.
func NewCollector(in InputSource, out io.Writer) *Collector {
	return &Collector{in: in, out: out}
}

// Collect repite prompt-validar hasta aceptar un valor. Cada rechazo imprime todos sus mensajes.
// Devuelve domain.ErrCanceled si el operador escribe "cancel" o se acaba la entrada.
func (c *Collector) Collect(p Prompt) (string, error) {
	m := newFieldMachine(p)
	for {
		fmt.Fprintf(c.out, "%s: ", p.Label)
		line, err := c.in.ReadLine()
		eof := false
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", err
			}
			eof = true
		}
		switch m.feed(line, eof) {
		case StateAccepted:
			return m.value, nil
		case StateCanceled:
			if eof {
				fmt.Fprintln(c.out)
			}
			return "", domain.ErrCanceled
		case StateRejected:
			for _, msg := range m.result.Errors {
				fmt.Fprintf(c.out, "ERROR: %s\n", msg)
			}
			m.retry()
		}
	}
}
