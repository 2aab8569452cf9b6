package commands

import (
	"context"
	"errors"

	"booksamples/internal/core/domain/model/catalog"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/ports"
	"booksamples/internal/pkg/errs"
)

// InstallResult reports what an install run created.
type InstallResult struct {
	ClassGrades []string
	Warehouses  []string
	Company     string
}

// InstallCommandHandler creates the default class grades, the default
// company's root warehouse group and the field warehouse, each only when
// missing.
type InstallCommandHandler struct {
	uowFactory SetupUoWFactory
}

func NewInstallCommandHandler(uowFactory SetupUoWFactory) InstallCommandHandler {
	return InstallCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h InstallCommandHandler) Handle(ctx context.Context, cmd InstallCommand) (InstallResult, error) {
	if err := cmd.Validate(); err != nil {
		return InstallResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InstallResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result InstallResult

	grades, err := h.installClassGrades(ctx, uow.CatalogRepository())
	if err != nil {
		return InstallResult{}, err
	}
	result.ClassGrades = grades

	warehouses := uow.WarehouseRepository()
	company, created, err := h.defaultCompany(ctx, warehouses, cmd)
	if err != nil {
		return InstallResult{}, err
	}
	if created {
		result.Company = company.Name()
	}

	rootGroup, err := stock.NewWarehouse(company.RootGroup(), company.Name(), "", true)
	if err != nil {
		return InstallResult{}, err
	}
	field, err := stock.NewWarehouse(cmd.FieldWarehouse(), company.Name(), company.RootGroup(), false)
	if err != nil {
		return InstallResult{}, err
	}
	for _, w := range []stock.Warehouse{rootGroup, field} {
		added, addErr := addWarehouseIfMissing(ctx, warehouses, w)
		if addErr != nil {
			return InstallResult{}, addErr
		}
		if added {
			result.Warehouses = append(result.Warehouses, w.Name())
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return InstallResult{}, err
	}
	return result, nil
}

func (h InstallCommandHandler) installClassGrades(ctx context.Context, repo ports.CatalogRepository) ([]string, error) {
	existing, err := repo.ListClassGrades(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(existing))
	for _, g := range existing {
		known[g.Name()] = struct{}{}
	}

	var created []string
	for _, g := range catalog.DefaultClassGrades() {
		if _, ok := known[g.Name()]; ok {
			continue
		}
		if err = repo.AddClassGrade(ctx, g); err != nil {
			return nil, err
		}
		created = append(created, g.Name())
	}
	return created, nil
}

func (h InstallCommandHandler) defaultCompany(
	ctx context.Context,
	repo ports.WarehouseRepository,
	cmd InstallCommand,
) (stock.Company, bool, error) {
	companies, err := repo.ListCompanies(ctx)
	if err != nil {
		return stock.Company{}, false, err
	}
	if len(companies) > 0 {
		company, pickErr := stock.PickDefaultCompany(companies)
		return company, false, pickErr
	}
	if cmd.CompanyName() == "" {
		return stock.Company{}, false, stock.ErrNoCompany
	}

	company, err := stock.NewCompany(cmd.CompanyName(), cmd.CompanyAbbr(), true)
	if err != nil {
		return stock.Company{}, false, err
	}
	if err = repo.AddCompany(ctx, company); err != nil {
		return stock.Company{}, false, err
	}
	return company, true, nil
}

func addWarehouseIfMissing(ctx context.Context, repo ports.WarehouseRepository, w stock.Warehouse) (bool, error) {
	_, err := repo.GetWarehouse(ctx, w.Name())
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return false, err
	}
	return true, repo.AddWarehouse(ctx, w)
}
