// Package catalogrepo persists sample items and class grades.
package catalogrepo

import (
	"booksamples/internal/core/domain/model/catalog"

	"github.com/lib/pq"
)

type ItemDTO struct {
	Code         string         `gorm:"type:varchar(140);primaryKey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	StockUOM     string         `gorm:"column:stock_uom;type:varchar(32);not null"`
	Subject      string         `gorm:"type:varchar(140)"`
	ClassGrades  pq.StringArray `gorm:"type:text[]"`
	Author       string         `gorm:"type:varchar(255)"`
	EditionYear  int            `gorm:"not null;default:0"`
	ISBN         string         `gorm:"column:isbn;type:varchar(32)"`
	Publisher    string         `gorm:"type:varchar(255)"`
	IsSampleBook bool           `gorm:"not null;default:true"`
}

func (ItemDTO) TableName() string {
	return "items"
}

type ClassGradeDTO struct {
	Name     string `gorm:"type:varchar(140);primaryKey"`
	Order    int    `gorm:"column:grade_order;not null"`
	IsActive bool   `gorm:"not null"`
}

func (ClassGradeDTO) TableName() string {
	return "class_grades"
}

func itemFromDomain(i *catalog.Item) ItemDTO {
	d := i.Details()
	return ItemDTO{
		Code:         i.Code(),
		Name:         i.Name(),
		StockUOM:     i.StockUOM(),
		Subject:      d.Subject,
		ClassGrades:  pq.StringArray(d.ClassGrades),
		Author:       d.Author,
		EditionYear:  d.EditionYear,
		ISBN:         d.ISBN,
		Publisher:    d.Publisher,
		IsSampleBook: d.IsSampleBook,
	}
}

func itemToDomain(dto ItemDTO) (*catalog.Item, error) {
	return catalog.NewItem(dto.Code, dto.Name, dto.StockUOM, catalog.Details{
		Subject:      dto.Subject,
		ClassGrades:  []string(dto.ClassGrades),
		Author:       dto.Author,
		EditionYear:  dto.EditionYear,
		ISBN:         dto.ISBN,
		Publisher:    dto.Publisher,
		IsSampleBook: dto.IsSampleBook,
	})
}
