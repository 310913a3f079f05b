package imagesearch

import "strings"

var stockPhotos = []Image{
	{ID: "1", URL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=500&q=60", Alt: "Black wristwatch", Source: "stock"},
	{ID: "2", URL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=500&q=60", Alt: "Headphones", Source: "stock"},
	{ID: "3", URL: "https://images.unsplash.com/photo-1572635196237-14b3f281503f?auto=format&fit=crop&w=500&q=60", Alt: "Sunglasses", Source: "stock"},
	{ID: "4", URL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=500&q=60", Alt: "Red shoes", Source: "stock"},
	{ID: "5", URL: "https://images.unsplash.com/photo-1585386959984-a4155224a1ad?auto=format&fit=crop&w=500&q=60", Alt: "Perfume bottle", Source: "stock"},
	{ID: "6", URL: "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=500&q=60", Alt: "Smart watch", Source: "stock"},
}

// FilterStock returns the stock photos whose alt text contains query, case-insensitively.
// An empty query matches all of them.
func FilterStock(query string) []Image {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Image, 0, len(stockPhotos))
	for _, img := range stockPhotos {
		if strings.Contains(strings.ToLower(img.Alt), q) {
			out = append(out, img)
		}
	}
	return out
}
