package domain

// Promotion is a carousel slide on the home feed. Promotions are static
// storefront content, not catalog data.
type Promotion struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// DefaultPromotions returns the carousel content for the home feed.
func DefaultPromotions() []Promotion {
	return []Promotion{
		{
			ID:       1,
			Title:    "Summer Collection 2024",
			Subtitle: "Up to 50% off on summer essentials",
			Image:    "https://cdn.dummyjson.com/products/images/smartphones/iPhone%205s/thumbnail.png",
		},
		{
			ID:       2,
			Title:    "New Furniture Arrivals",
			Subtitle: "Latest Modern Furnitures",
			Image:    "https://cdn.dummyjson.com/products/images/furniture/Annibale%20Colombo%20Sofa/thumbnail.png",
		},
	}
}

// TrendingSearches returns the suggested search terms shown before the user
// has typed a query.
func TrendingSearches() []string {
	return []string{"iPhone", "Samsung", "Laptop", "Smart Watch", "Headphones"}
}
