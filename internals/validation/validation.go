// Package validation checks raw request payloads before any store access.
// Rules are pure: the same body always produces the same verdict, and every
// failing field is reported, not only the first one.
package validation

import (
	"math"
	"regexp"
	"strconv"

	"github.com/pinkLiz/ReactServeBooks/internals/models"
)

var anioPattern = regexp.MustCompile(`^\d{4}$`)

// FieldError describes one failing field of a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateInput is the typed payload of a create operation. It only exists
// after ValidateCreate succeeds, with defaults already applied.
type CreateInput struct {
	Titulo          string
	Autor           string
	Isbn            string
	Editorial       string
	Sinopsis        string
	Genero          string
	AnioPublicacion *int
	Disponible      bool
}

// UpdatePatch maps store columns to the values an update payload carries.
// Absent fields stay absent, so unmentioned columns are left untouched.
type UpdatePatch struct {
	fields map[string]any
	idSeen bool
}

// Fields returns the column/value pairs to apply.
func (p *UpdatePatch) Fields() map[string]any {
	return p.fields
}

// IDPresent reports whether the payload carried an "id" key at all.
func (p *UpdatePatch) IDPresent() bool {
	return p.idSeen
}

// ValidateCreate applies the creation rules to a decoded JSON body and
// returns the typed input, or the list of every failing field.
func ValidateCreate(body map[string]any) (*CreateInput, []FieldError) {
	var errs []FieldError

	titulo, ok := requiredString(body, "titulo")
	if !ok {
		errs = append(errs, FieldError{"titulo", "El titulo es requerido"})
	}
	autor, ok := requiredString(body, "autor")
	if !ok {
		errs = append(errs, FieldError{"autor", "El autor es requerido"})
	}
	isbn, isbnErrs := checkIsbnRequired(body)
	errs = append(errs, isbnErrs...)
	editorial, ok := requiredString(body, "editorial")
	if !ok {
		errs = append(errs, FieldError{"editorial", "La editorial es requerida"})
	}

	input := &CreateInput{
		Titulo:     titulo,
		Autor:      autor,
		Isbn:       isbn,
		Editorial:  editorial,
		Genero:     models.GeneroOtro,
		Disponible: true,
	}

	if raw, present := body["sinopsis"]; present {
		sinopsis, ok := raw.(string)
		if !ok {
			errs = append(errs, FieldError{"sinopsis", "La sinopsis debe ser texto"})
		} else {
			input.Sinopsis = sinopsis
		}
	}

	if raw, present := body["genero"]; present {
		genero, ok := raw.(string)
		if !ok || !models.EsGeneroValido(genero) {
			errs = append(errs, FieldError{"genero", "Genero invalido"})
		} else {
			input.Genero = genero
		}
	}

	if raw, present := body["anioPublicacion"]; present {
		anio, ok := coerceAnio(raw)
		if !ok {
			errs = append(errs, FieldError{"anioPublicacion", "anioPublicacion debe tener 4 dígitos"})
		} else {
			input.AnioPublicacion = &anio
		}
	}

	if raw, present := body["disponible"]; present {
		disponible, ok := coerceBool(raw)
		if !ok {
			errs = append(errs, FieldError{"disponible", "disponible debe ser booleano"})
		} else {
			input.Disponible = disponible
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return input, nil
}

// ValidateUpdate applies the partial-update rules. Every field is optional,
// except that an "id" key is banned outright. The patch is returned even
// when fields fail, so the service can re-check the id ban on its own; a
// caller must treat a non-empty error list as a rejection.
func ValidateUpdate(body map[string]any) (*UpdatePatch, []FieldError) {
	var errs []FieldError
	patch := &UpdatePatch{fields: map[string]any{}}

	if _, present := body["id"]; present {
		patch.idSeen = true
		errs = append(errs, FieldError{"id", "No se puede actualizar el id"})
	}

	for _, field := range []struct {
		key, column, message string
	}{
		{"titulo", "titulo", "El titulo no puede estar vacio"},
		{"autor", "autor", "El autor no puede estar vacio"},
		{"editorial", "editorial", "La editorial no puede estar vacia"},
	} {
		raw, present := body[field.key]
		if !present {
			continue
		}
		value, ok := raw.(string)
		if !ok || value == "" {
			errs = append(errs, FieldError{field.key, field.message})
			continue
		}
		patch.fields[field.column] = value
	}

	if raw, present := body["isbn"]; present {
		isbn, ok := raw.(string)
		switch {
		case !ok:
			errs = append(errs, FieldError{"isbn", "El ISBN debe ser texto"})
		case len(isbn) > 30:
			errs = append(errs, FieldError{"isbn", "El ISBN excede la longitud"})
		default:
			patch.fields["isbn"] = isbn
		}
	}

	if raw, present := body["sinopsis"]; present {
		sinopsis, ok := raw.(string)
		if !ok {
			errs = append(errs, FieldError{"sinopsis", "La sinopsis debe ser texto"})
		} else {
			patch.fields["sinopsis"] = sinopsis
		}
	}

	if raw, present := body["genero"]; present {
		genero, ok := raw.(string)
		if !ok || !models.EsGeneroValido(genero) {
			errs = append(errs, FieldError{"genero", "Genero invalido"})
		} else {
			patch.fields["genero"] = genero
		}
	}

	if raw, present := body["anioPublicacion"]; present {
		anio, ok := coerceAnio(raw)
		if !ok {
			errs = append(errs, FieldError{"anioPublicacion", "anioPublicacion debe tener 4 dígitos"})
		} else {
			patch.fields["anio_publicacion"] = anio
		}
	}

	if raw, present := body["disponible"]; present {
		disponible, ok := coerceBool(raw)
		if !ok {
			errs = append(errs, FieldError{"disponible", "disponible debe ser booleano"})
		} else {
			patch.fields["disponible"] = disponible
		}
	}

	return patch, errs
}

func requiredString(body map[string]any, key string) (string, bool) {
	raw, present := body[key]
	if !present {
		return "", false
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

func checkIsbnRequired(body map[string]any) (string, []FieldError) {
	raw, present := body["isbn"]
	if !present {
		return "", []FieldError{{"isbn", "El ISBN es requerido"}}
	}
	isbn, ok := raw.(string)
	if !ok {
		return "", []FieldError{{"isbn", "El ISBN debe ser texto"}}
	}
	if isbn == "" {
		return "", []FieldError{{"isbn", "El ISBN es requerido"}}
	}
	if len(isbn) > 30 {
		return "", []FieldError{{"isbn", "El ISBN excede la longitud"}}
	}
	return isbn, nil
}

// coerceAnio accepts the year as a JSON number or string and requires its
// textual form to be exactly four decimal digits.
func coerceAnio(raw any) (int, bool) {
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		text = strconv.Itoa(int(v))
	case int:
		text = strconv.Itoa(v)
	default:
		return 0, false
	}
	if !anioPattern.MatchString(text) {
		return 0, false
	}
	anio, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return anio, true
}

// coerceBool accepts booleans plus the usual textual and numeric forms.
func coerceBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "true", "1":
			return true, true
		case "false", "0":
			return false, true
		}
	case float64:
		switch v {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	}
	return false, false
}
