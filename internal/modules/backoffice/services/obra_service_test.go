package services

import (
	"testing"

	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateObra(t *testing.T) {
	svc := NewObraService(newFakeObraRepo(), noopAuditor{})

	obra, err := svc.Create("tester", CreateObraRequest{
		Codigo:             " 310 ",
		Nombre:             "Plaza Centro",
		Cliente:            "Inmobiliaria Sol",
		ResidenteIniciales: "lm",
	})
	require.NoError(t, err)

	assert.Equal(t, "310", obra.Codigo)
	assert.Equal(t, "LM", obra.ResidenteIniciales)
	assert.Equal(t, models.ObraActiva, obra.Estado)
}

func TestCreateObraCodigoDuplicado(t *testing.T) {
	repo := newFakeObraRepo()
	svc := NewObraService(repo, noopAuditor{})

	_, err := svc.Create("tester", CreateObraRequest{Codigo: "228", Nombre: "Torre Norte"})
	require.NoError(t, err)

	_, err = svc.Create("tester", CreateObraRequest{Codigo: "228", Nombre: "Torre Sur"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "codigo")
}

func TestCreateObraCamposObligatorios(t *testing.T) {
	svc := NewObraService(newFakeObraRepo(), noopAuditor{})

	_, err := svc.Create("tester", CreateObraRequest{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "codigo")
	assert.Contains(t, verr.Fields, "nombre")
}

func TestCambiarEstadoObra(t *testing.T) {
	svc := NewObraService(newFakeObraRepo(), noopAuditor{})

	obra, err := svc.Create("tester", CreateObraRequest{Codigo: "228", Nombre: "Torre Norte"})
	require.NoError(t, err)

	pausada, err := svc.CambiarEstado("tester", obra.ID.String(), models.ObraPausada)
	require.NoError(t, err)
	assert.Equal(t, models.ObraPausada, pausada.Estado)

	_, err = svc.CambiarEstado("tester", obra.ID.String(), "Inexistente")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
