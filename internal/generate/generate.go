// Package generate produces a seeded synthetic raw dataset so the pipeline
// can run without access to the source systems.
package generate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/andresuchdata/chainsight/internal/domain"
)

// Dataset is one complete synthetic extract.
type Dataset struct {
	Products   []domain.Product
	Suppliers  []domain.Supplier
	Warehouses []domain.Warehouse
	Sales      []domain.SalesRecord
	Inventory  []domain.InventorySnapshot
	Orders     []domain.SupplyOrder
}

// Options controls the shape of the synthetic extract. Zero values fall back
// to the defaults the analytics were calibrated against.
type Options struct {
	Seed         int64
	Products     int
	Suppliers    int
	Warehouses   int
	Transactions int
	Orders       int
	SalesStart   time.Time
	SalesEnd     time.Time
	StockStart   time.Time
}

func (o *Options) applyDefaults() {
	if o.Products == 0 {
		o.Products = 50
	}
	if o.Suppliers == 0 {
		o.Suppliers = 20
	}
	if o.Warehouses == 0 {
		o.Warehouses = 10
	}
	if o.Transactions == 0 {
		o.Transactions = 15000
	}
	if o.Orders == 0 {
		o.Orders = 3000
	}
	if o.SalesStart.IsZero() {
		o.SalesStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if o.SalesEnd.IsZero() {
		o.SalesEnd = time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC)
	}
	if o.StockStart.IsZero() {
		o.StockStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
}

var (
	categories = []string{"Electronics", "Furniture", "Apparel", "Food", "Industrial"}
	countries  = []string{"USA", "China", "Germany", "India", "Japan"}
	regions    = []string{"North", "South", "East", "West", "Central"}
)

// New builds a synthetic extract. The same options always produce the same
// dataset.
func New(opts Options) *Dataset {
	opts.applyDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	d := &Dataset{}
	d.genProducts(rng, opts)
	d.genSuppliers(rng, opts)
	d.genWarehouses(rng, opts)
	d.genSales(rng, opts)
	d.genInventory(rng, opts)
	d.genOrders(rng, opts)
	return d
}

func (d *Dataset) genProducts(rng *rand.Rand, opts Options) {
	d.Products = make([]domain.Product, 0, opts.Products)
	for i := 1; i <= opts.Products; i++ {
		cost := roundTo(uniform(rng, 10, 500), 2)
		d.Products = append(d.Products, domain.Product{
			ProductID:    fmt.Sprintf("P%04d", i),
			ProductName:  fmt.Sprintf("Item_%d", i),
			Category:     categories[rng.Intn(len(categories))],
			UnitCost:     cost,
			UnitPrice:    roundTo(cost*uniform(rng, 1.3, 2.5), 2),
			LeadTimeDays: 3 + rng.Intn(18),
		})
	}
}

func (d *Dataset) genSuppliers(rng *rand.Rand, opts Options) {
	d.Suppliers = make([]domain.Supplier, 0, opts.Suppliers)
	for i := 1; i <= opts.Suppliers; i++ {
		d.Suppliers = append(d.Suppliers, domain.Supplier{
			SupplierID:       fmt.Sprintf("S%03d", i),
			SupplierName:     fmt.Sprintf("Supplier_%c", 'A'+(i-1)%26),
			Country:          countries[rng.Intn(len(countries))],
			ReliabilityScore: roundTo(uniform(rng, 0.70, 0.99), 2),
		})
	}
}

func (d *Dataset) genWarehouses(rng *rand.Rand, opts Options) {
	d.Warehouses = make([]domain.Warehouse, 0, opts.Warehouses)
	for i := 1; i <= opts.Warehouses; i++ {
		d.Warehouses = append(d.Warehouses, domain.Warehouse{
			WarehouseID: fmt.Sprintf("W%02d", i),
			Location:    regions[rng.Intn(len(regions))],
			Capacity:    5000 + rng.Intn(15000),
		})
	}
}

func (d *Dataset) genSales(rng *rand.Rand, opts Options) {
	days := int(opts.SalesEnd.Sub(opts.SalesStart).Hours()/24) + 1
	d.Sales = make([]domain.SalesRecord, 0, opts.Transactions)
	for i := 1; i <= opts.Transactions; i++ {
		ordered := 1 + rng.Intn(49)
		fulfilled := ordered
		// Roughly one in twenty transactions is a partial fulfillment.
		if rng.Float64() <= 0.05 {
			fulfilled = ordered / 2
		}
		d.Sales = append(d.Sales, domain.SalesRecord{
			TransactionID:     fmt.Sprintf("TRX%06d", i),
			Date:              opts.SalesStart.AddDate(0, 0, rng.Intn(days)),
			ProductID:         d.Products[rng.Intn(len(d.Products))].ProductID,
			WarehouseID:       d.Warehouses[rng.Intn(len(d.Warehouses))].WarehouseID,
			QuantityOrdered:   ordered,
			QuantityFulfilled: fulfilled,
		})
	}
}

func (d *Dataset) genInventory(rng *rand.Rand, opts Options) {
	var snapshotDates []time.Time
	for t := opts.StockStart; !t.After(opts.SalesEnd); t = t.AddDate(0, 0, 7) {
		snapshotDates = append(snapshotDates, t)
	}

	stockedPerWarehouse := len(d.Products)
	if stockedPerWarehouse > 20 {
		stockedPerWarehouse = 20
	}

	for _, w := range d.Warehouses {
		// Each warehouse stocks its own subset of the catalog.
		stocked := rng.Perm(len(d.Products))[:stockedPerWarehouse]
		for _, pi := range stocked {
			for _, date := range snapshotDates {
				d.Inventory = append(d.Inventory, domain.InventorySnapshot{
					Date:         date,
					WarehouseID:  w.WarehouseID,
					ProductID:    d.Products[pi].ProductID,
					CurrentStock: rng.Intn(1000),
					Temperature:  rng.NormFloat64()*2 + 22,
				})
			}
		}
	}
}

func (d *Dataset) genOrders(rng *rand.Rand, opts Options) {
	days := int(opts.SalesEnd.Sub(opts.SalesStart).Hours()/24) + 1
	d.Orders = make([]domain.SupplyOrder, 0, opts.Orders)
	for i := 1; i <= opts.Orders; i++ {
		d.Orders = append(d.Orders, domain.SupplyOrder{
			OrderID:            fmt.Sprintf("PO%05d", i),
			OrderDate:          opts.SalesStart.AddDate(0, 0, rng.Intn(days)),
			SupplierID:         d.Suppliers[rng.Intn(len(d.Suppliers))].SupplierID,
			ProductID:          d.Products[rng.Intn(len(d.Products))].ProductID,
			QtyOrdered:         100 + rng.Intn(400),
			DeliveryDaysActual: 5 + rng.Intn(25),
		})
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
