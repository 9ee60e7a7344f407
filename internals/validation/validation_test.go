package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateBody() map[string]any {
	return map[string]any{
		"titulo":    "Cien años de soledad",
		"autor":     "Gabriel García Márquez",
		"isbn":      "9780307474278",
		"editorial": "Sudamericana",
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateCreateAppliesDefaults(t *testing.T) {
	input, errs := ValidateCreate(validCreateBody())
	require.Empty(t, errs)

	assert.Equal(t, "Cien años de soledad", input.Titulo)
	assert.Equal(t, "otro", input.Genero)
	assert.True(t, input.Disponible)
	assert.Nil(t, input.AnioPublicacion)
}

func TestValidateCreateCollectsEveryFailure(t *testing.T) {
	_, errs := ValidateCreate(map[string]any{})

	assert.ElementsMatch(t, []string{"titulo", "autor", "isbn", "editorial"}, fieldsOf(errs))
}

func TestValidateCreateFieldRules(t *testing.T) {
	longIsbn := make([]byte, 31)
	for i := range longIsbn {
		longIsbn[i] = '9'
	}

	tests := []struct {
		name      string
		mutate    func(body map[string]any)
		wantField string
	}{
		{"empty titulo", func(b map[string]any) { b["titulo"] = "" }, "titulo"},
		{"titulo wrong type", func(b map[string]any) { b["titulo"] = 12.0 }, "titulo"},
		{"isbn too long", func(b map[string]any) { b["isbn"] = string(longIsbn) }, "isbn"},
		{"isbn wrong type", func(b map[string]any) { b["isbn"] = 123.0 }, "isbn"},
		{"unknown genero", func(b map[string]any) { b["genero"] = "poesia" }, "genero"},
		{"genero wrong type", func(b map[string]any) { b["genero"] = 3.0 }, "genero"},
		{"sinopsis wrong type", func(b map[string]any) { b["sinopsis"] = 42.0 }, "sinopsis"},
		{"anio too short", func(b map[string]any) { b["anioPublicacion"] = 123.0 }, "anioPublicacion"},
		{"anio too long", func(b map[string]any) { b["anioPublicacion"] = "19999" }, "anioPublicacion"},
		{"anio fractional", func(b map[string]any) { b["anioPublicacion"] = 1999.5 }, "anioPublicacion"},
		{"anio not a number", func(b map[string]any) { b["anioPublicacion"] = "abcd" }, "anioPublicacion"},
		{"disponible not coercible", func(b map[string]any) { b["disponible"] = "quizas" }, "disponible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validCreateBody()
			tt.mutate(body)

			input, errs := ValidateCreate(body)
			require.Nil(t, input)
			assert.Contains(t, fieldsOf(errs), tt.wantField)
		})
	}
}

func TestValidateCreateCoercions(t *testing.T) {
	body := validCreateBody()
	body["genero"] = "novela"
	body["anioPublicacion"] = "1967"
	body["disponible"] = "false"
	body["sinopsis"] = "La saga de los Buendía en Macondo."

	input, errs := ValidateCreate(body)
	require.Empty(t, errs)

	assert.Equal(t, "novela", input.Genero)
	require.NotNil(t, input.AnioPublicacion)
	assert.Equal(t, 1967, *input.AnioPublicacion)
	assert.False(t, input.Disponible)
}

func TestValidateCreateAcceptsNumericAnio(t *testing.T) {
	body := validCreateBody()
	body["anioPublicacion"] = 1967.0 // how a JSON number decodes

	input, errs := ValidateCreate(body)
	require.Empty(t, errs)
	require.NotNil(t, input.AnioPublicacion)
	assert.Equal(t, 1967, *input.AnioPublicacion)
}

func TestValidateUpdateRejectsIDKey(t *testing.T) {
	for name, id := range map[string]any{
		"matching id":  7.0,
		"different id": 99.0,
		"null id":      nil,
	} {
		t.Run(name, func(t *testing.T) {
			patch, errs := ValidateUpdate(map[string]any{"id": id, "titulo": "Rayuela"})
			assert.True(t, patch.IDPresent())
			require.Len(t, errs, 1)
			assert.Equal(t, "id", errs[0].Field)
			assert.Equal(t, "No se puede actualizar el id", errs[0].Message)
		})
	}
}

func TestValidateUpdateCollectsIDAndFieldFailures(t *testing.T) {
	_, errs := ValidateUpdate(map[string]any{"id": 1.0, "genero": "poesia"})

	assert.ElementsMatch(t, []string{"id", "genero"}, fieldsOf(errs))
}

func TestValidateUpdateBuildsColumnPatch(t *testing.T) {
	patch, errs := ValidateUpdate(map[string]any{
		"titulo":          "Rayuela",
		"anioPublicacion": "1963",
		"disponible":      false,
	})
	require.Empty(t, errs)

	assert.False(t, patch.IDPresent())
	assert.Equal(t, map[string]any{
		"titulo":           "Rayuela",
		"anio_publicacion": 1963,
		"disponible":       false,
	}, patch.Fields())
}

func TestValidateUpdateEmptyBodyIsValid(t *testing.T) {
	patch, errs := ValidateUpdate(map[string]any{})
	require.Empty(t, errs)
	assert.Empty(t, patch.Fields())
}

func TestValidateUpdateRejectsEmptyStrings(t *testing.T) {
	_, errs := ValidateUpdate(map[string]any{"titulo": "", "autor": "", "editorial": ""})

	assert.ElementsMatch(t, []string{"titulo", "autor", "editorial"}, fieldsOf(errs))
}
