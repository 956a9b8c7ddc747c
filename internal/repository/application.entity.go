package repository

import (
	"time"

	"github.com/oscahub/benefits-gateway/internal/model"
)

type ApplicationEntity struct {
	ID              int64          `db:"id"               gorm:"primaryKey;autoIncrement;column:id"`
	SeniorID        int64          `db:"senior_id"        gorm:"column:senior_id;not null;index"`
	Senior          *SeniorEntity  `gorm:"foreignKey:SeniorID;references:ID;constraint:OnDelete:CASCADE"`
	BenefitID       int64          `db:"benefit_id"       gorm:"column:benefit_id;not null;index"`
	Benefit         *BenefitEntity `gorm:"foreignKey:BenefitID;references:ID;constraint:OnDelete:CASCADE"`
	Status          string         `db:"status"           gorm:"column:status;not null;index"`
	Category        *string        `db:"category"         gorm:"column:category"`
	RejectionReason *string        `db:"rejection_reason" gorm:"column:rejection_reason"`
	CreatedAt       time.Time      `db:"created_at"       gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `db:"updated_at"       gorm:"column:updated_at;autoUpdateTime"`
}

func (ApplicationEntity) TableName() string {
	return "applications"
}

func toApplicationEntity(m *model.Application) *ApplicationEntity {
	if m == nil {
		return nil
	}
	var category *string
	if m.Category != nil {
		c := string(*m.Category)
		category = &c
	}
	return &ApplicationEntity{
		ID:              m.ID,
		SeniorID:        m.SeniorID,
		BenefitID:       m.BenefitID,
		Status:          string(m.Status),
		Category:        category,
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toApplicationModel(e *ApplicationEntity) *model.Application {
	if e == nil {
		return nil
	}
	var category *model.Category
	if e.Category != nil {
		c := model.Category(*e.Category)
		category = &c
	}
	return &model.Application{
		ID:              e.ID,
		SeniorID:        e.SeniorID,
		BenefitID:       e.BenefitID,
		Status:          model.Status(e.Status),
		Category:        category,
		RejectionReason: e.RejectionReason,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toApplicationDetail(e *ApplicationEntity) *model.ApplicationDetail {
	if e == nil {
		return nil
	}
	return &model.ApplicationDetail{
		Application: *toApplicationModel(e),
		Senior:      toSeniorModel(e.Senior),
		Benefit:     toBenefitModel(e.Benefit),
	}
}

func toApplicationDetails(entities []*ApplicationEntity) []*model.ApplicationDetail {
	if entities == nil {
		return nil
	}
	details := make([]*model.ApplicationDetail, len(entities))
	for i, e := range entities {
		details[i] = toApplicationDetail(e)
	}
	return details
}
