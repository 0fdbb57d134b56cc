package catalog

// storefrontProducts is the bakery's fixed menu. Prices are in the
// smallest currency unit.
var storefrontProducts = []Product{
	{ID: "1", Name: "Maria Mama Classic", Price: 200, Category: CategoryBread},
	{ID: "2", Name: "Sunshine Fruit Loaf", Price: 150, Category: CategoryBread},
	{ID: "3", Name: "Five Grain Loaf", Price: 40, Category: CategoryBread},
	{ID: "4", Name: "Rye Pumpkin", Price: 45, Category: CategoryBread},
	{ID: "5", Name: "French Cheese Bun", Price: 60, Category: CategoryBread},
	{ID: "6", Name: "Sourdough Cheese", Price: 35, Category: CategoryBread},
	{ID: "7", Name: "Vienna Bread", Price: 30, Category: CategoryBread},
	{ID: "8", Name: "French Cheese Ball", Price: 18, Category: CategoryBread},
	{ID: "9", Name: "Cranberry Cheese", Price: 25, Category: CategoryBread},
	{ID: "10", Name: "Black Olive Cheese", Price: 25, Category: CategoryBread},
	{ID: "11", Name: "Chocolate Raisin", Price: 20, Category: CategoryBread},
	{ID: "12", Name: "Walnut Bread", Price: 20, Category: CategoryBread},
	{ID: "13", Name: "Oak Bread", Price: 40, Category: CategoryBread},
	{ID: "14", Name: "Brioche Berry", Price: 120, Category: CategoryBread},
	{ID: "15", Name: "Mini Pineapple Buns (5pc)", Price: 50, Category: CategoryBread},
	{ID: "16", Name: "Coconut Bread", Price: 35, Category: CategoryBread},
	{ID: "17", Name: "Red Bean Bun", Price: 30, Category: CategoryBread},
	{ID: "18", Name: "Mexican Chocolate Bun", Price: 30, Category: CategoryBread},
	{ID: "19", Name: "Lava Dinner Rolls (8pc)", Price: 70, Category: CategoryBread},
	{ID: "20", Name: "French Baguette", Price: 55, Category: CategoryBread},
	{ID: "21", Name: "German Sausage Rolls (4pc)", Price: 50, Category: CategoryBread},
	{ID: "22", Name: "French Garlic Bread", Price: 40, Category: CategoryBread},
	{ID: "23", Name: "Easy-Digest Toast", Price: 45, Category: CategoryToast},
	{ID: "24", Name: "Fresh Milk Toast", Price: 45, Category: CategoryToast},
	{ID: "25", Name: "Whole Wheat Toast", Price: 60, Category: CategoryToast},
	{ID: "26", Name: "Cake Toast", Price: 70, Category: CategoryToast},
	{ID: "27", Name: "Raisin Toast", Price: 75, Category: CategoryToast},
	{ID: "28", Name: "Ham & Cheese Toast", Price: 100, Category: CategoryToast},
	{ID: "29", Name: "Light Cheesecake (Small)", Price: 35, Category: CategoryDessert},
	{ID: "30", Name: "Lemon Tart", Price: 70, Category: CategoryDessert},
	{ID: "31", Name: "Brownie", Price: 30, Category: CategoryDessert},
	{ID: "32", Name: "German Pudding", Price: 40, Category: CategoryDessert},
	{ID: "33", Name: "Golden Cheese Cake", Price: 35, Category: CategoryDessert},
	{ID: "34", Name: "Danish Daisy", Price: 60, Category: CategoryDessert},
	{ID: "35", Name: "Danish Chocolate", Price: 60, Category: CategoryDessert},
	{ID: "36", Name: "Oatmeal Cookies", Price: 60, Category: CategoryCookie},
	{ID: "37", Name: "Almond Chocolate", Price: 80, Category: CategoryCookie},
	{ID: "38", Name: "Walnut Shortbread", Price: 80, Category: CategoryCookie},
	{ID: "39", Name: "Sesame Crisps", Price: 80, Category: CategoryCookie},
	{ID: "40", Name: "Earl Grey Tea", Price: 80, Category: CategoryDrink},
	{ID: "41", Name: "Espresso Coffee", Price: 80, Category: CategoryDrink},
	{ID: "42", Name: "Pumpkin Seed Tuile", Price: 90, Category: CategoryCookie},
	{ID: "43", Name: "Almond Tuile", Price: 90, Category: CategoryCookie},
	{ID: "44", Name: "Milk Cookies", Price: 80, Category: CategoryCookie},
}
