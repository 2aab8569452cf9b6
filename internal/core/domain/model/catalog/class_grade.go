package catalog

import (
	"fmt"

	"booksamples/internal/pkg/errs"
)

// ClassGrade is a school class a book targets. Order sorts grades from
// pre-primary (negative) to Class 12.
type ClassGrade struct {
	name     string
	order    int
	isActive bool
}

// NewClassGrade creates a class grade.
func NewClassGrade(name string, order int, isActive bool) (ClassGrade, error) {
	if name == "" {
		return ClassGrade{}, errs.NewValueIsRequiredError("class grade")
	}
	return ClassGrade{name: name, order: order, isActive: isActive}, nil
}

func (g ClassGrade) Name() string { return g.name }
func (g ClassGrade) Order() int { return g.order }
func (g ClassGrade) IsActive() bool { return g.isActive }

// DefaultClassGrades returns Nursery, LKG, UKG and Class 1 to Class 12.
func DefaultClassGrades() []ClassGrade {
	grades := []ClassGrade{
		{name: "Nursery", order: -3, isActive: true},
		{name: "LKG", order: -2, isActive: true},
		{name: "UKG", order: -1, isActive: true},
	}
	for i := 1; i <= 12; i++ {
		grades = append(grades, ClassGrade{name: fmt.Sprintf("Class %d", i), order: i, isActive: true})
	}
	return grades
}
