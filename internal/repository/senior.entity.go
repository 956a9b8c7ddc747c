package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type SeniorEntity struct {
	ID               int64             `db:"id"                gorm:"primaryKey;autoIncrement;column:id"`
	FirstName        string            `db:"first_name"        gorm:"column:first_name;not null"`
	MiddleName       string            `db:"middle_name"       gorm:"column:middle_name"`
	LastName         string            `db:"last_name"         gorm:"column:last_name;not null"`
	Contact          string            `db:"contact"           gorm:"column:contact"`
	EmergencyContact string            `db:"emergency_contact" gorm:"column:emergency_contact"`
	EmergencyPhone   string            `db:"emergency_phone"   gorm:"column:emergency_phone"`
	Barangay         string            `db:"barangay"          gorm:"column:barangay;not null;index"`
	Purok            string            `db:"purok"             gorm:"column:purok"`
	Age              string            `db:"age"               gorm:"column:age;not null"` // text column, parsed at the model
	Gender           string            `db:"gender"            gorm:"column:gender;not null"`
	PWD              bool              `db:"pwd"               gorm:"column:pwd;not null;default:false"`
	LowIncome        bool              `db:"low_income"        gorm:"column:low_income;not null;default:false"`
	Remarks          string            `db:"remarks"           gorm:"column:remarks;not null;index"`
	ReleasedAt       *time.Time        `db:"released_at"       gorm:"column:released_at;index"`
	CreatedAt        time.Time         `db:"created_at"        gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `db:"updated_at"        gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt        *time.Time        `db:"deleted_at"        gorm:"column:deleted_at;index"`
	Documents        []*DocumentEntity `gorm:"foreignKey:SeniorID"`
}

func (SeniorEntity) TableName() string {
	return "seniors"
}

func toSeniorEntity(m *model.Senior) *SeniorEntity {
	if m == nil {
		return nil
	}
	return &SeniorEntity{
		ID:               m.ID,
		FirstName:        m.FirstName,
		MiddleName:       m.MiddleName,
		LastName:         m.LastName,
		Contact:          m.Contact,
		EmergencyContact: m.EmergencyContact,
		EmergencyPhone:   m.EmergencyPhone,
		Barangay:         m.Barangay,
		Purok:            m.Purok,
		Age:              m.Age,
		Gender:           m.Gender,
		PWD:              m.PWD,
		LowIncome:        m.LowIncome,
		Remarks:          string(m.Remarks),
		ReleasedAt:       m.ReleasedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		DeletedAt:        m.DeletedAt,
	}
}

func toSeniorModel(e *SeniorEntity) *model.Senior {
	if e == nil {
		return nil
	}
	return &model.Senior{
		ID:               e.ID,
		FirstName:        e.FirstName,
		MiddleName:       e.MiddleName,
		LastName:         e.LastName,
		Contact:          e.Contact,
		EmergencyContact: e.EmergencyContact,
		EmergencyPhone:   e.EmergencyPhone,
		Barangay:         e.Barangay,
		Purok:            e.Purok,
		Age:              e.Age,
		Gender:           e.Gender,
		PWD:              e.PWD,
		LowIncome:        e.LowIncome,
		Remarks:          model.Remark(e.Remarks),
		ReleasedAt:       e.ReleasedAt,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		DeletedAt:        e.DeletedAt,
		Documents:        toDocumentModels(e.Documents),
	}
}

func toSeniorModels(entities []*SeniorEntity) []*model.Senior {
	if entities == nil {
		return nil
	}
	models := make([]*model.Senior, len(entities))
	for i, e := range entities {
		models[i] = toSeniorModel(e)
	}
	return models
}
