package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/customer-handbook/internal/application/dto"
	"github.com/jhoicas/customer-handbook/internal/application/usecase"
	"github.com/jhoicas/customer-handbook/internal/domain"
	"github.com/jhoicas/customer-handbook/internal/domain/entity"
	"github.com/jhoicas/customer-handbook/internal/domain/validator"
)

const noData = "no data"

// errExit señal interna del comando exit.
var errExit = errors.New("exit")

// Session bucle interactivo: lee un comando, recolecta y valida sus argumentos y llama al caso de uso.
// Ningún error termina el bucle salvo exit o el fin de la entrada.
type Session struct {
	uc        *usecase.CustomerUseCase
	in        InputSource
	out       io.Writer
	collector *Collector
	log       zerolog.Logger
}

// NewSession construye la sesión sobre el caso de uso y la fuente de entrada.
func NewSession(uc *usecase.CustomerUseCase, in InputSource, out io.Writer, log zerolog.Logger) *Session {
	return &Session{
		uc:        uc,
		in:        in,
		out:       out,
		collector: NewCollector(in, out),
		log:       log,
	}
}

// Run ejecuta comandos hasta exit, fin de entrada o cancelación de ctx.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Please enter the command:")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("leer comando: %w", err)
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		kind, ok := ParseCommand(name)
		if !ok {
			fmt.Fprintln(s.out, "Invalid command!")
			continue
		}
		if err := s.Execute(ctx, kind); errors.Is(err, errExit) {
			return nil
		}
	}
}

// Execute corre un comando completo y reporta su resultado. Solo devuelve error para exit;
// el resto de errores se informan al operador y se registran.
func (s *Session) Execute(ctx context.Context, kind Kind) error {
	log := s.log.With().Str("command", string(kind)).Str("command_id", uuid.NewString()).Logger()
	log.Debug().Msg("comando iniciado")

	var err error
	switch kind {
	case KindHelp:
		fmt.Fprint(s.out, HelpText)
	case KindExit:
		return errExit
	case KindInsert:
		err = s.insert(ctx)
	case KindFind:
		err = s.find(ctx)
	case KindUpdate:
		err = s.update(ctx)
	case KindDelete:
		err = s.delete(ctx)
	case KindList:
		err = s.list(ctx)
	}
	s.report(log, err)
	return nil
}

// report traduce el error del comando a un mensaje para el operador; el detalle interno va al log.
func (s *Session) report(log zerolog.Logger, err error) {
	var verr *validator.ValidationError
	switch {
	case err == nil:
		log.Debug().Msg("comando completado")
	case errors.Is(err, domain.ErrCanceled):
		log.Info().Msg("comando cancelado")
		fmt.Fprintln(s.out, "command canceled")
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(s.out, noData)
	case errors.Is(err, domain.ErrDuplicate):
		fmt.Fprintln(s.out, "ERROR: customer with this customer_id already exists")
	case errors.As(err, &verr):
		log.Warn().Err(err).Msg("validación rechazada")
		for _, msg := range verr.Messages {
			fmt.Fprintf(s.out, "ERROR: %s\n", msg)
		}
	case errors.Is(err, domain.ErrUnknownField):
		log.Warn().Err(err).Msg("campo desconocido")
		fmt.Fprintln(s.out, "ERROR: unknown customer field")
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Error().Err(err).Msg("almacenamiento no disponible")
		fmt.Fprintln(s.out, "ERROR: storage unavailable")
	default:
		log.Error().Err(err).Msg("comando fallido")
		fmt.Fprintln(s.out, "ERROR: command failed")
	}
}

func fieldPrompt(f entity.Field) Prompt {
	return Prompt{
		Label:    string(f),
		Validate: func(v string) validator.Result { return validator.ValidateField(f, v) },
	}
}

func (s *Session) insert(ctx context.Context) error {
	values := make(map[entity.Field]string, len(entity.Fields))
	for _, f := range entity.Fields {
		v, err := s.collector.Collect(fieldPrompt(f))
		if err != nil {
			return err
		}
		values[f] = v
	}
	_, err := s.uc.Create(ctx, dto.CustomerRequest{
		CustomerID:       values[entity.FieldCustomerID],
		FullName:         values[entity.FieldFullName],
		Position:         values[entity.FieldPosition],
		OrganizationName: values[entity.FieldOrganizationName],
		Email:            values[entity.FieldEmail],
		Phone:            values[entity.FieldPhone],
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "customer inserted")
	return nil
}

func (s *Session) find(ctx context.Context) error {
	var field entity.Field
	_, err := s.collector.Collect(Prompt{
		Label: "argument name",
		Validate: func(v string) validator.Result {
			f, res := validator.ValidateFieldName(v)
			field = f
			return res
		},
	})
	if err != nil {
		return err
	}
	value, err := s.collector.Collect(Prompt{
		Label:    "argument value",
		Validate: func(v string) validator.Result { return validator.ValidateField(field, v) },
	})
	if err != nil {
		return err
	}
	c, err := s.uc.FindByField(ctx, field, value)
	if err != nil {
		return err
	}
	if c == nil {
		fmt.Fprintln(s.out, noData)
		return nil
	}
	fmt.Fprintln(s.out, c.String())
	return nil
}

// update pide el customer_id, comprueba que exista y luego pares (campo, valor) hasta un nombre vacío.
// Nada se escribe hasta terminar la recolección.
func (s *Session) update(ctx context.Context) error {
	id, err := s.collector.Collect(fieldPrompt(entity.FieldCustomerID))
	if err != nil {
		return err
	}
	current, err := s.uc.Get(ctx, id)
	if err != nil {
		return err
	}
	updated := *current
	changed := 0
	for {
		var field entity.Field
		name, err := s.collector.Collect(Prompt{
			Label:      "argument name (empty to finish)",
			AllowEmpty: true,
			Validate: func(v string) validator.Result {
				f, res := validator.ValidateMutableFieldName(v)
				field = f
				return res
			},
		})
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		value, err := s.collector.Collect(fieldPrompt(field))
		if err != nil {
			return err
		}
		updated.Set(field, value)
		changed++
	}
	if changed == 0 {
		fmt.Fprintln(s.out, "no changes")
		return nil
	}
	if _, err := s.uc.Update(ctx, dto.RequestFromEntity(&updated)); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "customer updated")
	return nil
}

func (s *Session) delete(ctx context.Context) error {
	id, err := s.collector.Collect(fieldPrompt(entity.FieldCustomerID))
	if err != nil {
		return err
	}
	if err := s.uc.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "customer deleted")
	return nil
}

// list acepta cero o más nombres de campo en una línea; un nombre inválido obliga a reescribir la línea.
func (s *Session) list(ctx context.Context) error {
	var sortBy []entity.Field
	_, err := s.collector.Collect(Prompt{
		Label:      "arguments name",
		AllowEmpty: true,
		Validate: func(v string) validator.Result {
			fields, res := validator.ValidateSortFields(strings.Fields(v))
			sortBy = fields
			return res
		},
	})
	if err != nil {
		return err
	}
	list, err := s.uc.List(ctx, sortBy)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(s.out, noData)
		return nil
	}
	for _, c := range list {
		fmt.Fprintln(s.out, c.String())
	}
	return nil
}
