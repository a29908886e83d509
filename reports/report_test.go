package reports

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"steakz/models"
)

func reservation(isPaid bool, orders ...models.Order) models.Reservation {
	return models.Reservation{IsPaid: isPaid, Orders: orders}
}

func order(item string, price float64) models.Order {
	return models.Order{MenuItem: item, Price: price}
}

func TestSummarize(t *testing.T) {
	snapshot := []models.Reservation{
		reservation(true, order("steak", 30), order("wine", 10)),
		reservation(false, order("steak", 30)),
	}

	summary := Summarize(snapshot)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.Equal(t, 40.0, summary.TotalRevenue)
	assert.Equal(t, []DishCount{
		{Dish: "steak", Count: 2},
		{Dish: "wine", Count: 1},
	}, summary.MostOrderedDishes)
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Empty(t, summary.MostOrderedDishes)
}

func TestSummarizeCountsReservationsNotLineItems(t *testing.T) {
	snapshot := []models.Reservation{
		reservation(false, order("soup", 5), order("bread", 2), order("coffee", 3)),
	}

	summary := Summarize(snapshot)

	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue, "unpaid reservations contribute no revenue")
}

func TestSummarizeTieBreakIsFirstEncountered(t *testing.T) {
	snapshot := []models.Reservation{
		reservation(true, order("wine", 10), order("steak", 30)),
		reservation(true, order("steak", 30), order("wine", 10)),
	}

	summary := Summarize(snapshot)

	// Both dishes appear twice; wine was seen first.
	assert.Equal(t, []DishCount{
		{Dish: "wine", Count: 2},
		{Dish: "steak", Count: 2},
	}, summary.MostOrderedDishes)
}

func TestSummarizeTruncatesToTopFive(t *testing.T) {
	var orders []models.Order
	for i := 0; i < 7; i++ {
		dish := fmt.Sprintf("dish-%d", i)
		// dish-0 once, dish-1 twice, ... dish-6 seven times.
		for j := 0; j <= i; j++ {
			orders = append(orders, order(dish, 1))
		}
	}
	snapshot := []models.Reservation{reservation(true, orders...)}

	summary := Summarize(snapshot)

	assert.Len(t, summary.MostOrderedDishes, TopDishes)
	assert.Equal(t, DishCount{Dish: "dish-6", Count: 7}, summary.MostOrderedDishes[0])
	assert.Equal(t, DishCount{Dish: "dish-2", Count: 3}, summary.MostOrderedDishes[4])
}

func TestRevenueOnlyCountsPaid(t *testing.T) {
	snapshot := []models.Reservation{
		reservation(true, order("steak", 30)),
		reservation(false, order("lobster", 80)),
		reservation(true, order("wine", 10), order("wine", 10)),
	}

	assert.Equal(t, 50.0, Revenue(snapshot))
}
