package commands

import (
	"errors"
	"strings"

	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/pkg/errs"
	"booksamples/internal/pkg/guard"
)

var ErrInstallCommandIsNotConstructed = errors.New(
	"InstallCommand must be created via NewInstallCommand constructor",
)

// InstallCommand seeds the master data the sample workflow needs. Running it
// again changes nothing.
//
// When no company exists yet and companyName is set, the company is created
// as the default one.
type InstallCommand struct {
	fieldWarehouse string
	companyName    string
	companyAbbr    string

	guard guard.ConstructorGuard
}

// NewInstallCommand defaults fieldWarehouse to "Samples in Field". A company
// name requires an abbreviation.
func NewInstallCommand(fieldWarehouse, companyName, companyAbbr string) (InstallCommand, error) {
	fieldWarehouse = strings.TrimSpace(fieldWarehouse)
	if fieldWarehouse == "" {
		fieldWarehouse = stock.DefaultFieldWarehouseName
	}
	if companyName != "" && companyAbbr == "" {
		return InstallCommand{}, errs.NewValueIsRequiredError("company abbreviation")
	}

	return InstallCommand{
		fieldWarehouse: fieldWarehouse,
		companyName:    companyName,
		companyAbbr:    companyAbbr,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c InstallCommand) Validate() error {
	return c.guard.Validate(ErrInstallCommandIsNotConstructed)
}

func (c InstallCommand) FieldWarehouse() string { return c.fieldWarehouse }
func (c InstallCommand) CompanyName() string { return c.companyName }
func (c InstallCommand) CompanyAbbr() string { return c.companyAbbr }
