package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type BenefitEntity struct {
	ID           int64                      `db:"id"          gorm:"primaryKey;autoIncrement;column:id"`
	Name         string                     `db:"name"        gorm:"column:name;not null"`
	Description  string                     `db:"description" gorm:"column:description"`
	Requirements []*BenefitRequirementEntity `gorm:"foreignKey:BenefitID"`
	CreatedAt    time.Time                  `db:"created_at"  gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time                  `db:"updated_at"  gorm:"column:updated_at;autoUpdateTime"`
}

func (BenefitEntity) TableName() string {
	return "benefits"
}

type BenefitRequirementEntity struct {
	ID        int64  `db:"id"         gorm:"primaryKey;autoIncrement;column:id"`
	BenefitID int64  `db:"benefit_id" gorm:"column:benefit_id;not null;index"`
	Name      string `db:"name"       gorm:"column:name;not null"`
	Required  bool   `db:"required"   gorm:"column:required;not null;default:true"`
}

func (BenefitRequirementEntity) TableName() string {
	return "benefit_requirements"
}

func toBenefitEntity(m *model.Benefit) *BenefitEntity {
	if m == nil {
		return nil
	}
	e := &BenefitEntity{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, req := range m.Requirements {
		e.Requirements = append(e.Requirements, &BenefitRequirementEntity{
			ID:        req.ID,
			BenefitID: req.BenefitID,
			Name:      req.Name,
			Required:  req.Required,
		})
	}
	return e
}

func toBenefitModel(e *BenefitEntity) *model.Benefit {
	if e == nil {
		return nil
	}
	m := &model.Benefit{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for _, req := range e.Requirements {
		m.Requirements = append(m.Requirements, &model.BenefitRequirement{
			ID:        req.ID,
			BenefitID: req.BenefitID,
			Name:      req.Name,
			Required:  req.Required,
		})
	}
	return m
}

func toBenefitModels(entities []*BenefitEntity) []*model.Benefit {
	if entities == nil {
		return nil
	}
	models := make([]*model.Benefit, len(entities))
	for i, e := range entities {
		models[i] = toBenefitModel(e)
	}
	return models
}
