package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"gorm.io/gorm"
)

// fakeTxRunner hands fn the in-memory repositories directly, without
// transactional rollback.
func fakeTxRunner(repos txRepos) txRunner {
	return func(fn func(repos txRepos) error) error {
		return fn(repos)
	}
}

type noopAuditor struct{}

func (noopAuditor) Record(actor, accion, entidad, entidadID, detalle string) {}

func (noopAuditor) List(entidad, entidadID string, limit int) ([]audit.Entry, error) {
	return nil, nil
}

type fakeObraRepo struct {
	obras map[string]*models.Obra
}

func newFakeObraRepo() *fakeObraRepo {
	return &fakeObraRepo{obras: make(map[string]*models.Obra)}
}

func (f *fakeObraRepo) Create(obra *models.Obra) error {
	if obra.ID == uuid.Nil {
		obra.ID = uuid.New()
	}
	f.obras[obra.ID.String()] = obra
	return nil
}

func (f *fakeObraRepo) GetByID(id string) (*models.Obra, error) {
	if obra, ok := f.obras[id]; ok {
		return obra, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeObraRepo) GetByCodigo(codigo string) (*models.Obra, error) {
	for _, obra := range f.obras {
		if obra.Codigo == codigo {
			return obra, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeObraRepo) List(estado string, limit int) ([]models.Obra, error) {
	var out []models.Obra
	for _, obra := range f.obras {
		if estado != "" && obra.Estado != estado {
			continue
		}
		out = append(out, *obra)
	}
	return out, nil
}

func (f *fakeObraRepo) Update(obra *models.Obra) error {
	f.obras[obra.ID.String()] = obra
	return nil
}

func (f *fakeObraRepo) Delete(id string) error {
	delete(f.obras, id)
	return nil
}

func (f *fakeObraRepo) Count() (int64, error) {
	return int64(len(f.obras)), nil
}

type fakeProveedorRepo struct {
	proveedores map[string]*models.Proveedor
}

func newFakeProveedorRepo() *fakeProveedorRepo {
	return &fakeProveedorRepo{proveedores: make(map[string]*models.Proveedor)}
}

func (f *fakeProveedorRepo) Create(proveedor *models.Proveedor) error {
	if proveedor.ID == uuid.Nil {
		proveedor.ID = uuid.New()
	}
	f.proveedores[proveedor.ID.String()] = proveedor
	return nil
}

func (f *fakeProveedorRepo) GetByID(id string) (*models.Proveedor, error) {
	if proveedor, ok := f.proveedores[id]; ok {
		return proveedor, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProveedorRepo) GetByCodigo(codigo string) (*models.Proveedor, error) {
	for _, proveedor := range f.proveedores {
		if proveedor.Codigo == codigo {
			return proveedor, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProveedorRepo) List(soloActivos bool, limit int) ([]models.Proveedor, error) {
	var out []models.Proveedor
	for _, proveedor := range f.proveedores {
		if soloActivos && !proveedor.Activo {
			continue
		}
		out = append(out, *proveedor)
	}
	return out, nil
}

func (f *fakeProveedorRepo) Update(proveedor *models.Proveedor) error {
	f.proveedores[proveedor.ID.String()] = proveedor
	return nil
}

func (f *fakeProveedorRepo) Delete(id string) error {
	delete(f.proveedores, id)
	return nil
}

type fakeOrdenRepo struct {
	ordenes map[string]*models.OrdenCompra
}

func newFakeOrdenRepo() *fakeOrdenRepo {
	return &fakeOrdenRepo{ordenes: make(map[string]*models.OrdenCompra)}
}

func (f *fakeOrdenRepo) Create(orden *models.OrdenCompra) error {
	if orden.ID == uuid.Nil {
		orden.ID = uuid.New()
	}
	f.ordenes[orden.ID.String()] = orden
	return nil
}

func (f *fakeOrdenRepo) GetByID(id string) (*models.OrdenCompra, error) {
	if orden, ok := f.ordenes[id]; ok {
		return orden, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrdenRepo) GetByNumeroOrden(numeroOrden string) (*models.OrdenCompra, error) {
	for _, orden := range f.ordenes {
		if orden.NumeroOrden == numeroOrden {
			return orden, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrdenRepo) List(filter repositories.OrdenFilter) ([]models.OrdenCompra, error) {
	var out []models.OrdenCompra
	for _, orden := range f.ordenes {
		if filter.Estado != "" && orden.Estado != filter.Estado {
			continue
		}
		if filter.EstadoPago != "" && orden.EstadoPago != filter.EstadoPago {
			continue
		}
		out = append(out, *orden)
	}
	return out, nil
}

func (f *fakeOrdenRepo) MaxConsecutivoByObra(obraID uuid.UUID) (int, error) {
	max := 0
	for _, orden := range f.ordenes {
		if orden.ObraID == obraID && orden.Consecutivo > max {
			max = orden.Consecutivo
		}
	}
	return max, nil
}

func (f *fakeOrdenRepo) Update(orden *models.OrdenCompra) error {
	f.ordenes[orden.ID.String()] = orden
	return nil
}

func (f *fakeOrdenRepo) UpdateEstado(id, estado string) error {
	orden, ok := f.ordenes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	orden.Estado = estado
	return nil
}

func (f *fakeOrdenRepo) ReplaceItems(orden *models.OrdenCompra, items []models.OrdenCompraItem) error {
	orden.Items = items
	f.ordenes[orden.ID.String()] = orden
	return nil
}

func (f *fakeOrdenRepo) ListPagoVencido(ref time.Time) ([]models.OrdenCompra, error) {
	var out []models.OrdenCompra
	for _, orden := range f.ordenes {
		if orden.FechaVencimientoPago == nil || !orden.FechaVencimientoPago.Before(ref) {
			continue
		}
		if !orden.SaldoPendiente.IsPositive() {
			continue
		}
		if orden.EstadoPago == models.PagoOrdenPagada || orden.EstadoPago == models.PagoOrdenVencida {
			continue
		}
		if orden.Estado == models.OrdenCancelada || orden.Estado == models.OrdenBorrador {
			continue
		}
		out = append(out, *orden)
	}
	return out, nil
}

func (f *fakeOrdenRepo) Delete(id string) error {
	delete(f.ordenes, id)
	return nil
}

type fakeRequisicionRepo struct {
	requisiciones map[string]*models.Requisicion
}

func newFakeRequisicionRepo() *fakeRequisicionRepo {
	return &fakeRequisicionRepo{requisiciones: make(map[string]*models.Requisicion)}
}

func (f *fakeRequisicionRepo) Create(requisicion *models.Requisicion) error {
	if requisicion.ID == uuid.Nil {
		requisicion.ID = uuid.New()
	}
	f.requisiciones[requisicion.ID.String()] = requisicion
	return nil
}

func (f *fakeRequisicionRepo) GetByID(id string) (*models.Requisicion, error) {
	if requisicion, ok := f.requisiciones[id]; ok {
		return requisicion, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequisicionRepo) List(obraID, estado string, limit int) ([]models.Requisicion, error) {
	var out []models.Requisicion
	for _, requisicion := range f.requisiciones {
		if estado != "" && requisicion.Estado != estado {
			continue
		}
		out = append(out, *requisicion)
	}
	return out, nil
}

func (f *fakeRequisicionRepo) MaxConsecutivoByObra(obraID uuid.UUID) (int, error) {
	max := 0
	for _, requisicion := range f.requisiciones {
		if requisicion.ObraID == obraID && requisicion.Consecutivo > max {
			max = requisicion.Consecutivo
		}
	}
	return max, nil
}

func (f *fakeRequisicionRepo) Update(requisicion *models.Requisicion) error {
	f.requisiciones[requisicion.ID.String()] = requisicion
	return nil
}

func (f *fakeRequisicionRepo) UpdateEstado(id, estado string) error {
	requisicion, ok := f.requisiciones[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	requisicion.Estado = estado
	return nil
}

func (f *fakeRequisicionRepo) Delete(id string) error {
	delete(f.requisiciones, id)
	return nil
}

type fakePagoRepo struct {
	pagos map[string]*models.Pago
}

func newFakePagoRepo() *fakePagoRepo {
	return &fakePagoRepo{pagos: make(map[string]*models.Pago)}
}

func (f *fakePagoRepo) Create(pago *models.Pago) error {
	if pago.ID == uuid.Nil {
		pago.ID = uuid.New()
	}
	f.pagos[pago.ID.String()] = pago
	return nil
}

func (f *fakePagoRepo) GetByID(id string) (*models.Pago, error) {
	if pago, ok := f.pagos[id]; ok {
		return pago, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePagoRepo) GetByBankTransaction(transactionID uuid.UUID) (*models.Pago, error) {
	for _, pago := range f.pagos {
		if pago.BankTransactionID != nil && *pago.BankTransactionID == transactionID {
			return pago, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePagoRepo) ListByOrden(ordenID string) ([]models.Pago, error) {
	var out []models.Pago
	for _, pago := range f.pagos {
		if pago.OrdenCompraID.String() == ordenID {
			out = append(out, *pago)
		}
	}
	return out, nil
}

func (f *fakePagoRepo) List(obraID string, limit int) ([]models.Pago, error) {
	var out []models.Pago
	for _, pago := range f.pagos {
		if obraID != "" && pago.ObraID.String() != obraID {
			continue
		}
		out = append(out, *pago)
	}
	return out, nil
}

func (f *fakePagoRepo) Update(pago *models.Pago) error {
	f.pagos[pago.ID.String()] = pago
	return nil
}

func (f *fakePagoRepo) Delete(id string) error {
	delete(f.pagos, id)
	return nil
}

type fakeBankTransactionRepo struct {
	transactions map[string]*models.BankTransaction
}

func newFakeBankTransactionRepo() *fakeBankTransactionRepo {
	return &fakeBankTransactionRepo{transactions: make(map[string]*models.BankTransaction)}
}

func (f *fakeBankTransactionRepo) CreateBatch(transactions []*models.BankTransaction) error {
	for _, tx := range transactions {
		if tx.ID == uuid.Nil {
			tx.ID = uuid.New()
		}
		f.transactions[tx.ID.String()] = tx
	}
	return nil
}

func (f *fakeBankTransactionRepo) GetByID(id string) (*models.BankTransaction, error) {
	if tx, ok := f.transactions[id]; ok {
		return tx, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBankTransactionRepo) List(matched *bool, limit int) ([]models.BankTransaction, error) {
	var out []models.BankTransaction
	for _, tx := range f.transactions {
		if matched != nil && tx.Matched != *matched {
			continue
		}
		out = append(out, *tx)
	}
	return out, nil
}

func (f *fakeBankTransactionRepo) MarkMatched(id, ordenID uuid.UUID, confidence int, manual bool) (int64, error) {
	tx, ok := f.transactions[id.String()]
	if !ok || tx.Matched {
		return 0, nil
	}
	tx.Matched = true
	tx.OrdenCompraID = &ordenID
	tx.MatchConfidence = confidence
	tx.MatchManual = manual
	return 1, nil
}

func (f *fakeBankTransactionRepo) Unmatch(id uuid.UUID) (int64, error) {
	tx, ok := f.transactions[id.String()]
	if !ok || !tx.Matched {
		return 0, nil
	}
	tx.Matched = false
	tx.OrdenCompraID = nil
	tx.MatchConfidence = 0
	tx.MatchManual = false
	return 1, nil
}
