package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// swagger:model
type UUIDBase struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}

// StringList JSON数组列
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("StringList: unsupported column type")
		}
		b = []byte(s)
	}
	if len(b) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, l)
}

// SkillLevelMap subject -> difficulty 的JSON对象列
type SkillLevelMap map[string]string

func (m SkillLevelMap) Value() (driver.Value, error) {
	if m == nil {
		m = SkillLevelMap{}
	}
	return json.Marshal(m)
}

func (m *SkillLevelMap) Scan(value interface{}) error {
	if value == nil {
		*m = SkillLevelMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("SkillLevelMap: unsupported column type")
		}
		b = []byte(s)
	}
	if len(b) == 0 {
		*m = SkillLevelMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}

// ScoreMap subject -> 百分比得分的JSON对象列
type ScoreMap map[string]float64

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		m = ScoreMap{}
	}
	return json.Marshal(m)
}

func (m *ScoreMap) Scan(value interface{}) error {
	if value == nil {
		*m = ScoreMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("ScoreMap: unsupported column type")
		}
		b = []byte(s)
	}
	if len(b) == 0 {
		*m = ScoreMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}
