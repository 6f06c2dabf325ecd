package services

import (
	"testing"

	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequisicionServiceForTest(t *testing.T) (*RequisicionService, *models.Obra, *models.Proveedor) {
	t.Helper()

	obraRepo := newFakeObraRepo()
	proveedorRepo := newFakeProveedorRepo()
	ordenRepo := newFakeOrdenRepo()
	requisicionRepo := newFakeRequisicionRepo()
	obra, proveedor := seedObraProveedor(t, obraRepo, proveedorRepo)

	ordenService := NewOrdenService(ordenRepo, obraRepo, proveedorRepo, noopAuditor{})
	svc := NewRequisicionService(requisicionRepo, obraRepo, ordenService, noopAuditor{})
	return svc, obra, proveedor
}

func TestCreateRequisicionGeneraNumero(t *testing.T) {
	svc, obra, _ := newRequisicionServiceForTest(t)

	requisicion, err := svc.Create("tester", CreateRequisicionRequest{
		ObraID:             obra.ID.String(),
		ResidenteIniciales: "rm",
		Items: []RequisicionItemRequest{
			{Descripcion: "Cemento gris", Cantidad: dec("50"), Unidad: "bulto"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "REQ228-1RM", requisicion.NumeroRequisicion)
	assert.Equal(t, models.RequisicionPendiente, requisicion.Estado)
	assert.Equal(t, models.UrgenciaNormal, requisicion.Urgencia)
}

func TestCreateRequisicionHeredaInicialesDeObra(t *testing.T) {
	svc, obra, _ := newRequisicionServiceForTest(t)

	requisicion, err := svc.Create("tester", CreateRequisicionRequest{
		ObraID: obra.ID.String(),
		Items: []RequisicionItemRequest{
			{Descripcion: "Arena", Cantidad: dec("3"), Unidad: "m3"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "REQ228-1RM", requisicion.NumeroRequisicion)
}

func TestCreateRequisicionCantidadInvalida(t *testing.T) {
	svc, obra, _ := newRequisicionServiceForTest(t)

	_, err := svc.Create("tester", CreateRequisicionRequest{
		ObraID: obra.ID.String(),
		Items: []RequisicionItemRequest{
			{Descripcion: "Arena", Cantidad: dec("0"), Unidad: "m3"},
		},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items.0.cantidad")
}

func TestConvertirRequiereAprobada(t *testing.T) {
	svc, obra, proveedor := newRequisicionServiceForTest(t)

	requisicion, err := svc.Create("tester", CreateRequisicionRequest{
		ObraID: obra.ID.String(),
		Items: []RequisicionItemRequest{
			{Descripcion: "Varilla 3/8", Cantidad: dec("2"), Unidad: "ton"},
		},
	})
	require.NoError(t, err)

	_, err = svc.Convertir("tester", requisicion.ID.String(), ConvertirRequest{
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "estado")
}

func TestConvertirCreaOrdenYMarcaRequisicion(t *testing.T) {
	svc, obra, proveedor := newRequisicionServiceForTest(t)

	requisicion, err := svc.Create("tester", CreateRequisicionRequest{
		ObraID: obra.ID.String(),
		Items: []RequisicionItemRequest{
			{Descripcion: "Varilla 3/8", Cantidad: dec("2"), Unidad: "ton"},
		},
	})
	require.NoError(t, err)

	_, err = svc.CambiarEstado("tester", requisicion.ID.String(), models.RequisicionAprobada)
	require.NoError(t, err)

	orden, err := svc.Convertir("tester", requisicion.ID.String(), ConvertirRequest{
		ProveedorID:        proveedor.ID.String(),
		Comprador:          "Juan Pérez",
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Varilla 3/8", Cantidad: dec("2"), Unidad: "ton", PrecioUnitario: dec("1100")},
		},
		TieneIVA: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "228-A01JP-CEM", orden.NumeroOrden)
	require.NotNil(t, orden.RequisicionID)
	assert.Equal(t, requisicion.ID, *orden.RequisicionID)
	assert.True(t, orden.Total.Equal(dec("2552.00")))

	recargada, err := svc.GetByID(requisicion.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RequisicionConvertidaOC, recargada.Estado)
}

func TestConvertirSinPreciosUsaLineasSolicitadas(t *testing.T) {
	svc, obra, proveedor := newRequisicionServiceForTest(t)

	requisicion, err := svc.Create("tester", CreateRequisicionRequest{
		ObraID: obra.ID.String(),
		Items: []RequisicionItemRequest{
			{Descripcion: "Grava", Cantidad: dec("4"), Unidad: "m3"},
		},
	})
	require.NoError(t, err)

	_, err = svc.CambiarEstado("tester", requisicion.ID.String(), models.RequisicionAprobada)
	require.NoError(t, err)

	orden, err := svc.Convertir("tester", requisicion.ID.String(), ConvertirRequest{
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
	})
	require.NoError(t, err)

	require.Len(t, orden.Items, 1)
	assert.Equal(t, "Grava", orden.Items[0].Descripcion)
	assert.True(t, orden.Total.IsZero())
}
