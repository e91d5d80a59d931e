package orders

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción SQL: Commit si fn retorna nil, Rollback si retorna error.
// La creación de órdenes depende de esto para que orden, cliente nuevo,
// decrementos de stock y leads se apliquen como una unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
		leadRepo repository.LeadRepository,
	) error) error
}
