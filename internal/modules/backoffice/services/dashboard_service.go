package services

import (
	"time"

	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardResumen is the aggregate snapshot the back-office home screen
// renders.
type DashboardResumen struct {
	ObrasActivas              int64           `json:"obras_activas"`
	OrdenesAbiertas           int64           `json:"ordenes_abiertas"`
	OrdenesPagoVencido        int64           `json:"ordenes_pago_vencido"`
	RequisicionesPendientes   int64           `json:"requisiciones_pendientes"`
	TransaccionesSinConciliar int64           `json:"transacciones_sin_conciliar"`
	SaldoPorPagar             decimal.Decimal `json:"saldo_por_pagar"`
	PagadoDelMes              decimal.Decimal `json:"pagado_del_mes"`
}

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Resumen() (*DashboardResumen, error) {
	resumen := &DashboardResumen{}

	if err := s.db.Model(&models.Obra{}).
		Where("estado = ?", models.ObraActiva).
		Count(&resumen.ObrasActivas).Error; err != nil {
		return nil, err
	}

	abiertas := []string{models.OrdenPendiente, models.OrdenAprobada, models.OrdenEnTransito}
	if err := s.db.Model(&models.OrdenCompra{}).
		Where("estado IN ?", abiertas).
		Count(&resumen.OrdenesAbiertas).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.OrdenCompra{}).
		Where("estado_pago = ?", models.PagoOrdenVencida).
		Count(&resumen.OrdenesPagoVencido).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Requisicion{}).
		Where("estado IN ?", []string{models.RequisicionPendiente, models.RequisicionEnRevision}).
		Count(&resumen.RequisicionesPendientes).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.BankTransaction{}).
		Where("matched = ?", false).
		Count(&resumen.TransaccionesSinConciliar).Error; err != nil {
		return nil, err
	}

	var saldo decimal.NullDecimal
	if err := s.db.Model(&models.OrdenCompra{}).
		Select("SUM(saldo_pendiente)").
		Where("estado NOT IN ?", []string{models.OrdenCancelada, models.OrdenBorrador}).
		Scan(&saldo).Error; err != nil {
		return nil, err
	}
	if saldo.Valid {
		resumen.SaldoPorPagar = saldo.Decimal.Round(2)
	}

	now := time.Now()
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var pagado decimal.NullDecimal
	if err := s.db.Model(&models.Pago{}).
		Select("SUM(monto)").
		Where("estado = ? AND created_at >= ?", models.PagoAplicado, inicioMes).
		Scan(&pagado).Error; err != nil {
		return nil, err
	}
	if pagado.Valid {
		resumen.PagadoDelMes = pagado.Decimal.Round(2)
	}

	return resumen, nil
}
