package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/amr-khaled0p/lazez2/internal/domain/entity"
	"github.com/amr-khaled0p/lazez2/internal/domain/enum"
)

// Modifier and exclusion templates shared by items of the same category.
// Copied per item so stock adjustments stay scoped to one menu entry.
func burgerModifiers() []entity.Modifier {
	return []entity.Modifier{
		{ID: "m1", Name: "Extra Beef", Price: 45, Stock: 50},
		{ID: "m2", Name: "Cheddar Cheese", Price: 15, Stock: 100},
	}
}

func burgerExclusions() []entity.Exclusion {
	return []entity.Exclusion{
		{ID: "e1", Name: "No Onion"},
		{ID: "e2", Name: "No Tomato"},
	}
}

func pizzaModifiers() []entity.Modifier {
	return []entity.Modifier{
		{ID: "m3", Name: "Cheese Crust", Price: 30, Stock: 40},
		{ID: "m4", Name: "Extra Mozzarella", Price: 20, Stock: 80},
	}
}

func pizzaExclusions() []entity.Exclusion {
	return []entity.Exclusion{
		{ID: "e3", Name: "No Olives"},
		{ID: "e4", Name: "No Peppers"},
	}
}

func drinkModifiers() []entity.Modifier {
	return []entity.Modifier{
		{ID: "m5", Name: "Extra Flavor", Price: 10, Stock: 50},
		{ID: "m6", Name: "Extra Ice", Price: 0, Stock: 999},
	}
}

// SeedMenu returns the default menu used when no snapshot exists.
func SeedMenu() []entity.CatalogItem {
	return []entity.CatalogItem{
		// Burgers
		{ID: "b1", Name: "Wagyu Gold Burger", Description: "Premium wagyu beef with truffle oil.", Price: 190, Category: enum.CategoryBurgers, Stock: 20, Modifiers: burgerModifiers(), Exclusions: burgerExclusions(), IsBestSeller: true},
		{ID: "b2", Name: "Classic Smokehouse", Description: "Smoked beef with BBQ sauce.", Price: 145, Category: enum.CategoryBurgers, Stock: 25, Modifiers: burgerModifiers(), Exclusions: burgerExclusions()},
		{ID: "b3", Name: "Crispy Zinger Pro", Description: "Double crispy chicken breast.", Price: 130, Category: enum.CategoryBurgers, Stock: 15, Modifiers: burgerModifiers(), Exclusions: burgerExclusions()},
		{ID: "b4", Name: "Mushroom Swiss", Description: "Sauteed mushrooms and swiss cheese.", Price: 155, Category: enum.CategoryBurgers, Stock: 12, Modifiers: burgerModifiers(), Exclusions: burgerExclusions()},
		{ID: "b5", Name: "Avocado Turkey", Description: "Fresh avocado and grilled turkey.", Price: 165, Category: enum.CategoryBurgers, Stock: 10},
		{ID: "b6", Name: "Inferno Spicy", Description: "Ghost pepper sauce and jalapenos.", Price: 140, Category: enum.CategoryBurgers, Stock: 18},
		{ID: "b7", Name: "Diet Veggie", Description: "Quinoa and black bean patty.", Price: 115, Category: enum.CategoryBurgers, Stock: 30},

		// Pizza
		{ID: "p1", Name: "Truffle Funghi", Description: "Wild mushroom and white cream.", Price: 210, Category: enum.CategoryPizza, Stock: 12, Modifiers: pizzaModifiers(), Exclusions: pizzaExclusions(), IsBestSeller: true},
		{ID: "p2", Name: "Pepperoni King", Description: "Triple layered beef pepperoni.", Price: 185, Category: enum.CategoryPizza, Stock: 20, Modifiers: pizzaModifiers(), Exclusions: pizzaExclusions()},
		{ID: "p3", Name: "Quattro Formaggi", Description: "Four premium Italian cheeses.", Price: 230, Category: enum.CategoryPizza, Stock: 15},
		{ID: "p4", Name: "BBQ Chicken", Description: "Grilled chicken with hickory BBQ.", Price: 195, Category: enum.CategoryPizza, Stock: 18},
		{ID: "p5", Name: "Seafood Marinara", Description: "Shrimp, calamari, and garlic.", Price: 280, Category: enum.CategoryPizza, Stock: 8},
		{ID: "p6", Name: "Vegetarian Garden", Description: "Bell peppers, olives, and corn.", Price: 160, Category: enum.CategoryPizza, Stock: 22},

		// Sides
		{ID: "s1", Name: "Gold Loaded Fries", Description: "Cheese, bacon, and chives.", Price: 85, Category: enum.CategorySides, Stock: 100, IsBestSeller: true},
		{ID: "s2", Name: "Buffalo Wings (10pcs)", Description: "Classic spicy buffalo glaze.", Price: 125, Category: enum.CategorySides, Stock: 40},
		{ID: "s3", Name: "Mozzarella Sticks", Description: "Melty cheese with marinara.", Price: 90, Category: enum.CategorySides, Stock: 50},
		{ID: "s4", Name: "Onion Rings", Description: "Extra crispy beer-battered.", Price: 65, Category: enum.CategorySides, Stock: 80},
		{ID: "s5", Name: "Chicken Tenders", Description: "5 pieces of premium breast.", Price: 110, Category: enum.CategorySides, Stock: 35},
		{ID: "s6", Name: "Caesar Salad", Description: "Romaine, parmesan, croutons.", Price: 95, Category: enum.CategorySides, Stock: 20},

		// Drinks
		{ID: "d1", Name: "Passion Mojito", Description: "Fresh mint and passion fruit.", Price: 65, Category: enum.CategoryDrinks, Stock: 200, Modifiers: drinkModifiers()},
		{ID: "d2", Name: "Belgian Choco Shake", Description: "Rich dark chocolate blend.", Price: 90, Category: enum.CategoryDrinks, Stock: 45, Modifiers: drinkModifiers()},
		{ID: "d3", Name: "Iced Spanish Latte", Description: "Sweetened condensed milk latte.", Price: 85, Category: enum.CategoryDrinks, Stock: 60},
		{ID: "d4", Name: "Berry Smoothie", Description: "Mix of forest berries and yogurt.", Price: 75, Category: enum.CategoryDrinks, Stock: 40},
		{ID: "d5", Name: "Fresh Orange", Description: "100% cold pressed oranges.", Price: 55, Category: enum.CategoryDrinks, Stock: 50},
		{ID: "d6", Name: "Iced Hibiscus", Description: "Traditional Egyptian blend.", Price: 40, Category: enum.CategoryDrinks, Stock: 100},
	}
}

// SeedBranches returns the static branch directory.
func SeedBranches() []entity.Branch {
	return []entity.Branch{
		{ID: "br1", Name: "Downtown Flagship", Address: "123 Nile Street, City Center", Phone: "+20 123 456 7890", Hours: "10:00 AM - 02:00 AM"},
		{ID: "br2", Name: "Sheikh Zayed Branch", Address: "Arkan Plaza, 6th of October", Phone: "+20 123 456 7891", Hours: "12:00 PM - 03:00 AM"},
	}
}

// SeedSettings returns the default storefront settings.
func SeedSettings() entity.SiteSettings {
	return entity.SiteSettings{
		HeroTitle:    "Taste the Unmatched",
		HeroSubtitle: "Elevating street food with premium ingredients and a touch of golden perfection.",
		PrimaryColor: "#FF6B35",
		IsClosed:     false,
	}
}

// Seed builds the initial state. adminEmail/adminHash come from configuration
// so default credentials never ship in code.
func Seed(adminEmail, adminName, adminHash string) *State {
	return &State{
		Menu:     SeedMenu(),
		Sales:    []entity.Sale{},
		Settings: SeedSettings(),
		Branches: SeedBranches(),
		Users: []entity.User{{
			ID:           uuid.New(),
			Email:        adminEmail,
			Name:         adminName,
			PasswordHash: adminHash,
			IsAdmin:      true,
			CreatedAt:    time.Now().UTC(),
		}},
	}
}
