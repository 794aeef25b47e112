package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TopLimit caps the top-customers and top-products rankings.
const TopLimit = 5

type Summary struct {
	TotalSales        string `json:"total_sales"`
	TotalCustomers    int    `json:"total_customers"`
	TotalProductsSold int    `json:"total_products_sold"`
}

type CustomerSales struct {
	CustomerID int    `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalSpent string `json:"total_spent"`
}

type ProductSales struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	SoldQty   int    `json:"sold_qty"`
}

// Summarize computes overall sales over the items matching the range.
// totalCustomers is the global customer count and is reported as-is; the date
// filter never narrows it.
func Summarize(items []LineItem, r DateRange, totalCustomers int) Summary {
	total := decimal.Zero
	soldQty := 0

	for _, it := range items {
		if !r.Contains(it.OrderDate) {
			continue
		}
		total = total.Add(it.Total())
		soldQty += it.Quantity
	}

	return Summary{
		TotalSales:        total.StringFixed(2),
		TotalCustomers:    totalCustomers,
		TotalProductsSold: soldQty,
	}
}

// TopCustomers ranks customers by total spend over the matching items,
// descending, at most TopLimit entries. Customers without matching items are
// excluded rather than zero-padded. Equal totals order by ascending customer ID.
func TopCustomers(items []LineItem, r DateRange) []CustomerSales {
	type group struct {
		name  string
		email string
		spent decimal.Decimal
	}

	groups := make(map[int]*group)
	for _, it := range items {
		if !r.Contains(it.OrderDate) {
			continue
		}
		g, ok := groups[it.CustomerID]
		if !ok {
			g = &group{name: it.CustomerName, email: it.CustomerEmail, spent: decimal.Zero}
			groups[it.CustomerID] = g
		}
		g.spent = g.spent.Add(it.Total())
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := groups[ids[i]].spent, groups[ids[j]].spent
		if !a.Equal(b) {
			return a.GreaterThan(b)
		}
		return ids[i] < ids[j]
	})
	if len(ids) > TopLimit {
		ids = ids[:TopLimit]
	}

	result := make([]CustomerSales, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		result = append(result, CustomerSales{
			CustomerID: id,
			Name:       g.name,
			Email:      g.email,
			TotalSpent: g.spent.StringFixed(2),
		})
	}
	return result
}

// TopProducts ranks products by quantity sold over the matching items,
// descending, at most TopLimit entries. Equal quantities order by ascending
// product ID.
func TopProducts(items []LineItem, r DateRange) []ProductSales {
	type group struct {
		name string
		qty  int
	}

	groups := make(map[int]*group)
	for _, it := range items {
		if !r.Contains(it.OrderDate) {
			continue
		}
		g, ok := groups[it.ProductID]
		if !ok {
			g = &group{name: it.ProductName}
			groups[it.ProductID] = g
		}
		g.qty += it.Quantity
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := groups[ids[i]].qty, groups[ids[j]].qty
		if a != b {
			return a > b
		}
		return ids[i] < ids[j]
	})
	if len(ids) > TopLimit {
		ids = ids[:TopLimit]
	}

	result := make([]ProductSales, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		result = append(result, ProductSales{ProductID: id, Name: g.name, SoldQty: g.qty})
	}
	return result
}
