package stock

import (
	"errors"

	"booksamples/internal/pkg/errs"
)

// DefaultFieldWarehouseName is the shared warehouse holding samples left at schools.
const DefaultFieldWarehouseName = "Samples in Field"

var ErrNoCompany = errors.New("please set up a company first")

// RootGroupName is the warehouse group every company's warehouses hang under.
func RootGroupName(companyAbbr string) string {
	return "All Warehouses - " + companyAbbr
}

// Company owns warehouses.
type Company struct {
	name      string
	abbr      string
	isDefault bool
}

// NewCompany creates a company. Name and abbreviation are required.
func NewCompany(name, abbr string, isDefault bool) (Company, error) {
	if name == "" {
		return Company{}, errs.NewValueIsRequiredError("company name")
	}
	if abbr == "" {
		return Company{}, errs.NewValueIsRequiredError("company abbreviation")
	}
	return Company{name: name, abbr: abbr, isDefault: isDefault}, nil
}

func (c Company) Name() string { return c.name }
func (c Company) Abbr() string { return c.abbr }
func (c Company) IsDefault() bool { return c.isDefault }

// RootGroup returns the name of the company's root warehouse group.
func (c Company) RootGroup() string {
	return RootGroupName(c.abbr)
}

// PickDefaultCompany returns the company flagged default, else the first one.
func PickDefaultCompany(companies []Company) (Company, error) {
	if len(companies) == 0 {
		return Company{}, ErrNoCompany
	}
	for _, c := range companies {
		if c.isDefault {
			return c, nil
		}
	}
	return companies[0], nil
}

// Warehouse is a named stock location. Names are unique across companies.
type Warehouse struct {
	name    string
	company string
	parent  string
	isGroup bool
}

// NewWarehouse creates a warehouse. Parent is empty only for root groups.
func NewWarehouse(name, company, parent string, isGroup bool) (Warehouse, error) {
	if name == "" {
		return Warehouse{}, errs.NewValueIsRequiredError("warehouse name")
	}
	if company == "" {
		return Warehouse{}, errs.NewValueIsRequiredError("company")
	}
	return Warehouse{name: name, company: company, parent: parent, isGroup: isGroup}, nil
}

func (w Warehouse) Name() string { return w.name }
func (w Warehouse) Company() string { return w.company }
func (w Warehouse) Parent() string { return w.parent }
func (w Warehouse) IsGroup() bool { return w.isGroup }
