package scrap

import (
	"context"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that transaction. Guarantees atomicity of the scrap ledger and
// the inventory item mutation; the stock-movement audit write deliberately
// happens outside (best-effort, see Service).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		scrapRepo repository.ScrapRepository,
	) error) error
}
