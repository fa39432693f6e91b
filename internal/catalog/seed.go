package catalog

import "github.com/ADSorokin/ShopMaster/internal/domain"

// SeedProducts returns the demo product catalog.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:   1,
			Name: domain.Localized{RU: "Смартфон Galaxy S23", EN: "Galaxy S23 Smartphone"},
			Description: domain.Localized{
				RU: "Последняя модель смартфона с мощным процессором и отличной камерой. Поддержка 5G, 120Hz дисплей, 5000mAh батарея.",
				EN: "Latest smartphone model with powerful processor and excellent camera. 5G support, 120Hz display, 5000mAh battery.",
			},
			Price:    79990,
			Discount: 5,
			Category: "electronics",
			Brand:    "Samsung",
			Rating:   4.8,
			Stock:    15,
			Colors:   []string{"черный", "white", "зеленый"},
			Sizes:    []string{"6.1\"", "6.7\""},
			Specifications: map[domain.Language]map[string]string{
				domain.LangRU: {
					"processor": "Snapdragon 8 Gen 2",
					"memory":    "8GB RAM",
					"storage":   "256GB",
					"display":   "6.1\" Dynamic AMOLED",
					"battery":   "3900mAh",
				},
				domain.LangEN: {
					"processor": "Snapdragon 8 Gen 2",
					"memory":    "8GB RAM",
					"storage":   "256GB",
					"display":   "6.1\" Dynamic AMOLED",
					"battery":   "3900mAh",
				},
			},
			Reviews: []domain.Review{
				{ID: 1, User: "Алексей", Rating: 5, Comment: "Отличный телефон, камера супер!", Date: "2024-01-15"},
				{ID: 2, User: "Марина", Rating: 4, Comment: "Хороший аппарат, но батарея могла бы быть лучше", Date: "2024-01-10"},
			},
		},
		{
			ID:   2,
			Name: domain.Localized{RU: "Ноутбук MacBook Pro", EN: "MacBook Pro Laptop"},
			Description: domain.Localized{
				RU: "Профессиональный ноутбук для работы и творчества. M2 чип, Retina дисплей, до 20 часов автономной работы.",
				EN: "Professional laptop for work and creativity. M2 chip, Retina display, up to 20 hours of battery life.",
			},
			Price:    159990,
			Category: "electronics",
			Brand:    "Apple",
			Rating:   4.9,
			Stock:    8,
			Colors:   []string{"серебристый", "серый космос"},
			Sizes:    []string{"14\"", "16\""},
			Reviews: []domain.Review{
				{ID: 3, User: "Иван", Rating: 5, Comment: "Лучший ноутбук для работы!", Date: "2024-01-12"},
			},
		},
		{
			ID:   3,
			Name: domain.Localized{RU: "Наушники Sony WH-1000XM5", EN: "Sony WH-1000XM5 Headphones"},
			Description: domain.Localized{
				RU: "Шумоподавление высшего класса и превосходное качество звука. 30 часов автономной работы, быстрая зарядка.",
				EN: "Top-class noise cancellation and excellent sound quality. 30 hours of battery life, fast charging.",
			},
			Price:    24990,
			Discount: 15,
			Category: "electronics",
			Brand:    "Sony",
			Rating:   4.7,
			Stock:    20,
			Reviews: []domain.Review{
				{ID: 4, User: "Елена", Rating: 5, Comment: "Шумоподавление просто волшебное!", Date: "2024-01-08"},
				{ID: 5, User: "Дмитрий", Rating: 4, Comment: "Комфортные, звук отличный", Date: "2024-01-05"},
			},
		},
		{
			ID:   4,
			Name: domain.Localized{RU: "Кроссовки Nike Air Max", EN: "Nike Air Max Sneakers"},
			Description: domain.Localized{
				RU: "Удобные кроссовки для повседневной носки. Амортизация Air, дышащая сетка, прочная подошва.",
				EN: "Comfortable sneakers for everyday wear. Air cushioning, breathable mesh, durable sole.",
			},
			Price:    12990,
			Category: "clothing",
			Brand:    "Nike",
			Rating:   4.6,
			Stock:    35,
			Colors:   []string{"черный", "белый", "синий", "красный"},
			Sizes:    []string{"36", "37", "38", "39", "40", "41", "42", "43", "44", "45"},
			Reviews: []domain.Review{
				{ID: 6, User: "Ольга", Rating: 5, Comment: "Супер удобные, но размер немного маловат", Date: "2024-01-14"},
			},
		},
	}
}

// SeedCategories returns the browsing categories.
func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "all", Name: domain.Localized{RU: "Все товары", EN: "All products"}, Icon: "🛍️"},
		{ID: "electronics", Name: domain.Localized{RU: "Электроника", EN: "Electronics"}, Icon: "📱"},
		{ID: "clothing", Name: domain.Localized{RU: "Одежда", EN: "Clothing"}, Icon: "👕"},
		{ID: "accessories", Name: domain.Localized{RU: "Аксессуары", EN: "Accessories"}, Icon: "👜"},
		{ID: "home", Name: domain.Localized{RU: "Дом", EN: "Home"}, Icon: "🏠"},
	}
}

// SeedPickupPoints returns the pickup locations.
func SeedPickupPoints() []domain.PickupPoint {
	return []domain.PickupPoint{
		{ID: 1, Name: domain.Localized{RU: "Пункт выдачи №1", EN: "Pickup point #1"}, Address: "ул. Ленина, 15", ClosingTime: "21:00", Coordinates: [2]float64{55.7558, 37.6176}},
		{ID: 2, Name: domain.Localized{RU: "Пункт выдачи №2", EN: "Pickup point #2"}, Address: "пр. Мира, 100", ClosingTime: "20:00", Coordinates: [2]float64{55.7512, 37.6184}},
		{ID: 3, Name: domain.Localized{RU: "Пункт выдачи №3", EN: "Pickup point #3"}, Address: "ул. Садовая, 25", ClosingTime: "19:00", Coordinates: [2]float64{55.7522, 37.6179}},
	}
}

// SeedCoupons returns the known promotional codes.
func SeedCoupons() []domain.Coupon {
	return []domain.Coupon{
		{Code: "WELCOME10", Discount: 10, Valid: true},
		{Code: "SUMMER20", Discount: 20, Valid: true},
		{Code: "FREESHIP", Discount: 0, FreeShipping: true, Valid: true},
	}
}
