package seeders

import (
	"embed"
	"encoding/json"
)

//go:embed data/*.json
var builtin embed.FS

func init() {
	Register("dishes", SeedDishes)
	Register("orders", SeedOrders)
}

// SeedDishes appends the built-in menu.
func SeedDishes(d *Data) error {
	return decode("data/dishes.json", &d.Dishes)
}

// SeedOrders appends the built-in orders.
func SeedOrders(d *Data) error {
	return decode("data/orders.json", &d.Orders)
}

func decode[T any](name string, dest *[]T) error {
	raw, err := builtin.ReadFile(name)
	if err != nil {
		return err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	*dest = append(*dest, items...)
	return nil
}
