package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionRegister    = "register"
	AuditActionLogin       = "login"
	AuditActionFailedLogin = "failed_login"
	AuditActionRoleUpdated = "role_updated"
	AuditActionNameUpdated = "name_updated"
	AuditActionUserDeleted = "user_deleted"
	AuditActionAdminSeeded = "admin_seeded"

	AuditResourceUser = "user"
)

// AuditLog records a change made through the user directory. Subject is
// the email of the affected user and survives that user's deletion.
type AuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Subject   string    `gorm:"type:varchar(255);not null;index" json:"subject"`
	Action    string    `gorm:"type:varchar(50);not null;index" json:"action"`
	Resource  string    `gorm:"type:varchar(50);not null" json:"resource"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	Metadata  JSONBMap  `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) String() string {
	return fmt.Sprintf("AuditLog[Subject: %s, Action: %s, Resource: %s, Time: %s]",
		al.Subject, al.Action, al.Resource, al.CreatedAt.Format(time.RFC3339))
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.Resource == "" {
		al.Resource = AuditResourceUser
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now()
	}
	return nil
}

// JSONBMap is a free-form JSON object column. It is written as text so
// the same column works on SQLite.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
