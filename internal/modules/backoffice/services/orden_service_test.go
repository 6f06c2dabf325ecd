package services

import (
	"testing"

	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedObraProveedor(t *testing.T, obraRepo *fakeObraRepo, proveedorRepo *fakeProveedorRepo) (*models.Obra, *models.Proveedor) {
	t.Helper()

	obra := &models.Obra{Codigo: "228", Nombre: "Torre Norte", ResidenteIniciales: "RM", Estado: models.ObraActiva}
	require.NoError(t, obraRepo.Create(obra))

	proveedor := &models.Proveedor{Codigo: "CEM", Nombre: "Cementos del Valle", Activo: true, DiasCredito: 30}
	require.NoError(t, proveedorRepo.Create(proveedor))

	return obra, proveedor
}

func newOrdenServiceForTest(t *testing.T) (*OrdenService, *fakeOrdenRepo, *models.Obra, *models.Proveedor) {
	t.Helper()

	obraRepo := newFakeObraRepo()
	proveedorRepo := newFakeProveedorRepo()
	ordenRepo := newFakeOrdenRepo()
	obra, proveedor := seedObraProveedor(t, obraRepo, proveedorRepo)

	svc := NewOrdenService(ordenRepo, obraRepo, proveedorRepo, noopAuditor{})
	return svc, ordenRepo, obra, proveedor
}

func TestCreateOrdenCalculaTotalesYFolio(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	orden, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		Comprador:          "Juan Pérez",
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Cemento gris", Cantidad: dec("10"), Unidad: "bulto", PrecioUnitario: dec("200")},
			{Descripcion: "Varilla 3/8", Cantidad: dec("2"), Unidad: "ton", PrecioUnitario: dec("1100")},
		},
		DescuentoModo:  "porcentaje",
		DescuentoValor: dec("10"),
		TieneIVA:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "228-A01JP-CEM", orden.NumeroOrden)
	assert.True(t, orden.Subtotal.Equal(dec("4200.00")))
	assert.True(t, orden.DescuentoMonto.Equal(dec("420.00")))
	assert.True(t, orden.IVA.Equal(dec("604.80")))
	assert.True(t, orden.Total.Equal(dec("4384.80")))
	assert.True(t, orden.SaldoPendiente.Equal(orden.Total))
	assert.Equal(t, models.OrdenPendiente, orden.Estado)
	assert.Equal(t, models.PagoOrdenPendiente, orden.EstadoPago)
	require.Len(t, orden.Items, 2)
	assert.True(t, orden.Items[0].Total.Equal(dec("2000.00")))
}

func TestCreateOrdenConsecutivoPorObra(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	req := CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Arena", Cantidad: dec("1"), Unidad: "m3", PrecioUnitario: dec("350")},
		},
		DescuentoModo: "porcentaje",
	}

	primera, err := svc.Create("tester", req)
	require.NoError(t, err)
	segunda, err := svc.Create("tester", req)
	require.NoError(t, err)

	assert.Equal(t, "228-A01JP-CEM", primera.NumeroOrden)
	assert.Equal(t, "228-A02JP-CEM", segunda.NumeroOrden)
}

func TestCreateOrdenNoReutilizaFolioTrasEliminar(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	req := CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Arena", Cantidad: dec("1"), Unidad: "m3", PrecioUnitario: dec("350")},
		},
		DescuentoModo: "porcentaje",
	}

	primera, err := svc.Create("tester", req)
	require.NoError(t, err)
	segunda, err := svc.Create("tester", req)
	require.NoError(t, err)
	assert.Equal(t, "228-A02JP-CEM", segunda.NumeroOrden)

	_, err = svc.CambiarEstado("tester", primera.ID.String(), models.OrdenCancelada)
	require.NoError(t, err)
	require.NoError(t, svc.Delete("tester", primera.ID.String()))

	// A row count would restart at 2 and collide with the surviving A02; the
	// sequence must move past the highest number ever issued.
	tercera, err := svc.Create("tester", req)
	require.NoError(t, err)
	assert.Equal(t, "228-A03JP-CEM", tercera.NumeroOrden)
	assert.Equal(t, 3, tercera.Consecutivo)
}

func TestCreateOrdenCreditoCalculaVencimiento(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	orden, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Grava", Cantidad: dec("3"), Unidad: "m3", PrecioUnitario: dec("400")},
		},
		DescuentoModo: "porcentaje",
		FormaPago:     "Crédito",
	})
	require.NoError(t, err)

	// Sin días explícitos hereda los del proveedor.
	assert.Equal(t, 30, orden.DiasCredito)
	require.NotNil(t, orden.FechaVencimientoPago)
	assert.Equal(t, orden.FechaOrden.AddDate(0, 0, 30).Day(), orden.FechaVencimientoPago.Day())
}

func TestCreateOrdenSinItems(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	_, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		DescuentoModo:      "porcentaje",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "items")
}

func TestCreateOrdenProveedorInactivo(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)
	proveedor.Activo = false

	_, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Cal", Cantidad: dec("1"), Unidad: "saco", PrecioUnitario: dec("90")},
		},
		DescuentoModo: "porcentaje",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "proveedor_id")
}

func TestUpdateOrdenRecalculaTotales(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	orden, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Cemento gris", Cantidad: dec("10"), Unidad: "bulto", PrecioUnitario: dec("200")},
		},
		DescuentoModo: "porcentaje",
		TieneIVA:      true,
	})
	require.NoError(t, err)

	actualizada, err := svc.Update("tester", orden.ID.String(), UpdateOrdenRequest{
		Items: []OrdenItemRequest{
			{Descripcion: "Cemento gris", Cantidad: dec("5"), Unidad: "bulto", PrecioUnitario: dec("200")},
		},
		DescuentoModo:  "monto",
		DescuentoValor: dec("2000"),
		TieneIVA:       false,
	})
	require.NoError(t, err)

	// Descuento por monto capado al subtotal.
	assert.True(t, actualizada.Subtotal.Equal(dec("1000.00")))
	assert.True(t, actualizada.DescuentoMonto.Equal(dec("1000.00")))
	assert.True(t, actualizada.Total.IsZero())
	assert.True(t, actualizada.SaldoPendiente.IsZero())
}

func TestCambiarEstadoTransiciones(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	orden, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Tabique", Cantidad: dec("500"), Unidad: "pza", PrecioUnitario: dec("8")},
		},
		DescuentoModo: "porcentaje",
	})
	require.NoError(t, err)

	aprobada, err := svc.CambiarEstado("tester", orden.ID.String(), models.OrdenAprobada)
	require.NoError(t, err)
	assert.Equal(t, models.OrdenAprobada, aprobada.Estado)

	// Una orden aprobada no puede regresar a pendiente.
	_, err = svc.CambiarEstado("tester", orden.ID.String(), models.OrdenPendiente)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestDeleteOrdenSoloBorradorOCancelada(t *testing.T) {
	svc, _, obra, proveedor := newOrdenServiceForTest(t)

	orden, err := svc.Create("tester", CreateOrdenRequest{
		ObraID:             obra.ID.String(),
		ProveedorID:        proveedor.ID.String(),
		CompradorIniciales: "JP",
		Items: []OrdenItemRequest{
			{Descripcion: "Yeso", Cantidad: dec("20"), Unidad: "saco", PrecioUnitario: dec("120")},
		},
		DescuentoModo: "porcentaje",
	})
	require.NoError(t, err)

	err = svc.Delete("tester", orden.ID.String())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.CambiarEstado("tester", orden.ID.String(), models.OrdenCancelada)
	require.NoError(t, err)
	require.NoError(t, svc.Delete("tester", orden.ID.String()))
}
