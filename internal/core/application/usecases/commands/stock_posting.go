package commands

import (
	"context"
	"time"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/services"
	"booksamples/internal/core/ports"
)

// postEntry creates a stock entry for a document, applies it to the locked
// bins and persists both. It returns the id of the submitted entry.
func postEntry(
	ctx context.Context,
	repo ports.StockRepository,
	poster services.StockPoster,
	entryType stock.EntryType,
	postingDate time.Time,
	reference stock.Reference,
	lines []stock.Line,
) (kernel.UUID, error) {
	entry, err := stock.NewEntry(kernel.NewUUID(), entryType, postingDate, reference, lines)
	if err != nil {
		return kernel.UUID{}, err
	}

	balances, err := repo.GetBalances(ctx, stock.KeysOf(entry.Movements()))
	if err != nil {
		return kernel.UUID{}, err
	}

	bins, err := poster.Post(entry, balances)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = repo.AddEntry(ctx, entry); err != nil {
		return kernel.UUID{}, err
	}
	if err = repo.SaveBins(ctx, bins); err != nil {
		return kernel.UUID{}, err
	}

	return entry.ID(), nil
}

// reverseEntry cancels a linked stock entry. Entries that are no longer
// submitted are left alone.
func reverseEntry(ctx context.Context, repo ports.StockRepository, poster services.StockPoster, id *kernel.UUID) error {
	if id == nil {
		return nil
	}

	entry, err := repo.GetEntry(ctx, *id)
	if err != nil {
		return err
	}
	if entry.DocStatus() != kernel.Submitted {
		return nil
	}

	balances, err := repo.GetBalances(ctx, stock.KeysOf(entry.ReversalMovements()))
	if err != nil {
		return err
	}

	bins, err := poster.Reverse(entry, balances)
	if err != nil {
		return err
	}

	if err = repo.UpdateEntry(ctx, entry); err != nil {
		return err
	}
	return repo.SaveBins(ctx, bins)
}

// onHandKeys returns the bins of every item in every non-empty warehouse.
func onHandKeys(itemCodes []string, warehouses ...string) []stock.BinKey {
	seen := make(map[stock.BinKey]struct{})
	var keys []stock.BinKey
	for _, w := range warehouses {
		if w == "" {
			continue
		}
		for _, code := range itemCodes {
			key := stock.BinKey{ItemCode: code, Warehouse: w}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
