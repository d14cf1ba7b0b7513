package memory

import (
	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/models"
)

// DemoPhone logs into the seeded demo account, which always gets id "1".
const DemoPhone = "999888777"

type SeedAccount struct {
	Name    string
	Phone   string
	Balance decimal.Decimal
}

type SeedTransfer struct {
	FromPhone   string
	ToPhone     string
	Amount      decimal.Decimal
	Date        string
	Description string
}

type SeedPayment struct {
	PayerPhone string
	Payment    models.Payment
}

// Seed is the initial content of a Store. Accounts are numbered from 1 in order.
type Seed struct {
	Accounts   []SeedAccount
	Merchants  []string
	Promotions []models.Promotion
	Transfers  []SeedTransfer
	Payments   []SeedPayment
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultSeed is the demo data set served by the mock server.
func DefaultSeed() Seed {
	return Seed{
		Accounts: []SeedAccount{
			{Name: "Juan Perez", Phone: DemoPhone, Balance: d(1500)},
			{Name: "Maria Lopez", Phone: "987654321", Balance: d(800)},
			{Name: "Michael Hinojosa", Phone: "912345678", Balance: d(1000)},
			{Name: "Mikel Bracamonte", Phone: "923456789", Balance: d(300)},
		},
		Merchants: []string{"Tienda A", "Tienda B"},
		Promotions: []models.Promotion{
			{
				PromotionSummary: models.PromotionSummary{ID: "1", Store: "Tienda A", Product: "Producto 1", Discount: d(10), Price: d(100)},
				Description:      "Descripción del producto",
				ValidFrom:        "2024-09-01",
				ValidUntil:       "2024-09-30",
			},
			{
				PromotionSummary: models.PromotionSummary{ID: "2", Store: "Tienda B", Product: "Producto 2", Discount: d(20), Price: d(200)},
				Description:      "Descripción del producto",
				ValidFrom:        "2024-09-01",
				ValidUntil:       "2099-12-31",
			},
		},
		Transfers: []SeedTransfer{
			{FromPhone: DemoPhone, ToPhone: "987654321", Amount: d(500), Date: "2024-09-27", Description: "Transferencia"},
			{FromPhone: DemoPhone, ToPhone: "987654321", Amount: d(300), Date: "2024-09-28", Description: "Pago de servicios"},
			{FromPhone: "912345678", ToPhone: DemoPhone, Amount: d(400), Date: "2024-09-26", Description: "Te debo"},
			{FromPhone: "923456789", ToPhone: DemoPhone, Amount: d(200), Date: "2024-09-28", Description: "Pagado"},
		},
		Payments: []SeedPayment{
			{PayerPhone: DemoPhone, Payment: models.Payment{Recipient: "Tienda A", Amount: d(100), Product: "Producto 1", Date: "2024-09-27", Code: "PROMO123"}},
			{PayerPhone: DemoPhone, Payment: models.Payment{Recipient: "Tienda B", Amount: d(200), Product: "Producto 2", Date: "2024-09-28", Code: "PROMO456"}},
		},
	}
}
