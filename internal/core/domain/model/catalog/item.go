// Package catalog holds the sample book master data: items and the class
// grades they are written for.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"booksamples/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Details carries the optional bibliographic fields of a sample book.
type Details struct {
	Subject      string
	ClassGrades  []string
	Author       string
	EditionYear  int
	ISBN         string
	Publisher    string
	IsSampleBook bool
}

// Item is a book that can be loaded, distributed and collected.
type Item struct {
	code     string
	name     string
	stockUOM string
	details  Details

	isConstructed bool
}

// NewItem creates an item. Code and name are required; the unit of measure
// defaults to "Nos".
func NewItem(code, name, stockUOM string, details Details) (*Item, error) {
	item := &Item{isConstructed: true}
	if err := errors.Join(
		item.setCode(code),
		item.setName(name),
		item.setDetails(details),
	); err != nil {
		return nil, err
	}

	item.stockUOM = stockUOM
	if item.stockUOM == "" {
		item.stockUOM = "Nos"
	}
	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) Code() string { return i.code }
func (i *Item) Name() string { return i.name }
func (i *Item) StockUOM() string { return i.stockUOM }

// Details returns a copy of the bibliographic fields.
func (i *Item) Details() Details {
	d := i.details
	d.ClassGrades = append([]string(nil), i.details.ClassGrades...)
	return d
}

// ClassGradeLabel joins the class grades the way they are shown on documents,
// e.g. "Class 4, Class 5". The first grade is used as the document's class grade.
func (i *Item) ClassGradeLabel() string {
	return strings.Join(i.details.ClassGrades, ", ")
}

// PrimaryClassGrade returns the first class grade or an empty string.
func (i *Item) PrimaryClassGrade() string {
	if len(i.details.ClassGrades) == 0 {
		return ""
	}
	return i.details.ClassGrades[0]
}

func (i *Item) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("item code")
	}
	i.code = code
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setDetails(d Details) error {
	if d.EditionYear < 0 {
		return errs.NewValueIsInvalidErrorWithCause("edition year", fmt.Errorf("%d is negative", d.EditionYear))
	}
	seen := make(map[string]struct{}, len(d.ClassGrades))
	grades := make([]string, 0, len(d.ClassGrades))
	for _, g := range d.ClassGrades {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		grades = append(grades, g)
	}
	d.ClassGrades = grades
	i.details = d
	return nil
}
