// Package reports reduces a snapshot of reservations-with-orders into the
// figures shown on the reporting screens. Pure functions only; callers fetch
// the snapshot once and never re-query mid-computation.
package reports

import (
	"sort"

	"steakz/models"
)

// TopDishes is the number of entries kept in MostOrderedDishes.
const TopDishes = 5

// DishCount pairs a menu item name with how many times it was ordered.
type DishCount struct {
	Dish  string `json:"dish"`
	Count int    `json:"count"`
}

// Summary is the result of one reporting pass over a day's reservations.
type Summary struct {
	TotalOrders       int         `json:"totalOrders"`
	TotalRevenue      float64     `json:"totalRevenue"`
	MostOrderedDishes []DishCount `json:"mostOrderedDishes"`
}

// Summarize reduces the snapshot into a Summary.
//
// TotalOrders counts reservations, not line items. TotalRevenue sums order
// prices of paid reservations only. MostOrderedDishes counts menu items
// across all orders regardless of payment, sorted by count descending with
// ties kept in first-encountered order, truncated to TopDishes.
func Summarize(reservations []models.Reservation) Summary {
	summary := Summary{
		TotalOrders:       len(reservations),
		TotalRevenue:      Revenue(reservations),
		MostOrderedDishes: []DishCount{},
	}

	indexByDish := make(map[string]int)
	dishes := make([]DishCount, 0)
	for _, r := range reservations {
		for _, o := range r.Orders {
			if i, seen := indexByDish[o.MenuItem]; seen {
				dishes[i].Count++
				continue
			}
			indexByDish[o.MenuItem] = len(dishes)
			dishes = append(dishes, DishCount{Dish: o.MenuItem, Count: 1})
		}
	}

	// Stable sort keeps first-encountered order for equal counts.
	sort.SliceStable(dishes, func(i, j int) bool {
		return dishes[i].Count > dishes[j].Count
	})
	if len(dishes) > TopDishes {
		dishes = dishes[:TopDishes]
	}
	summary.MostOrderedDishes = dishes

	return summary
}

// Revenue sums order prices across reservations marked paid. Unpaid
// reservations contribute zero.
func Revenue(reservations []models.Reservation) float64 {
	var total float64
	for _, r := range reservations {
		if !r.IsPaid {
			continue
		}
		for _, o := range r.Orders {
			total += o.Price
		}
	}
	return total
}
