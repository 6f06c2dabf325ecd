package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entry is one audit trail record. Entries are append-only; nothing in the
// application updates or deletes them.
type Entry struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	Actor     string `gorm:"type:text" json:"actor"`
	Accion    string `gorm:"type:text;not null;index" json:"accion"`
	Entidad   string `gorm:"type:text;not null;index" json:"entidad"`
	EntidadID string `gorm:"type:text;index" json:"entidad_id"`
	Detalle   string `gorm:"type:text" json:"detalle"`

	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Entry) TableName() string {
	return "audit_log"
}

// BeforeCreate sets UUID before creating
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Action constants
const (
	AccionCrear      = "crear"
	AccionActualizar = "actualizar"
	AccionEliminar   = "eliminar"
	AccionEstado     = "cambio_estado"
	AccionMatch      = "match"
	AccionUnmatch    = "unmatch"
	AccionImport     = "import"
	AccionPago       = "pago"
	AccionLogin      = "login"
)

// Recorder records audit entries. Recording is best-effort: a failed write
// is logged but never propagated to the business operation that caused it.
type Recorder interface {
	Record(actor, accion, entidad, entidadID, detalle string)
	List(entidad, entidadID string, limit int) ([]Entry, error)
}

type recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) Recorder {
	return &recorder{db: db}
}

func (r *recorder) Record(actor, accion, entidad, entidadID, detalle string) {
	entry := &Entry{
		Actor:     actor,
		Accion:    accion,
		Entidad:   entidad,
		EntidadID: entidadID,
		Detalle:   detalle,
	}
	if err := r.db.Create(entry).Error; err != nil {
		utils.LogError("fallo al registrar auditoría", err, map[string]interface{}{
			"accion":  accion,
			"entidad": entidad,
		})
	}
}

func (r *recorder) List(entidad, entidadID string, limit int) ([]Entry, error) {
	var entries []Entry
	query := r.db.Order("created_at DESC")

	if entidad != "" {
		query = query.Where("entidad = ?", entidad)
	}
	if entidadID != "" {
		query = query.Where("entidad_id = ?", entidadID)
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	err := query.Limit(limit).Find(&entries).Error
	return entries, err
}
