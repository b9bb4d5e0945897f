package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kmwhite/dinner-recipes/backend/internal/model"
)

type seedRecipe struct {
	Name         string
	Category     string
	Signature    string
	Ingredients  []string
	Instructions string
	PrepTime     int
	CookTime     int
}

var seedRecipes = []seedRecipe{
	{
		Name:        "Lemon Garlic Chicken",
		Category:    model.CategoryChicken,
		Signature:   "Grandma Ruth",
		Ingredients: []string{"chicken thighs", "lemon", "garlic", "olive oil", "thyme"},
		Instructions: "Marinate the chicken in lemon juice, garlic and olive oil for 30 minutes. " +
			"Roast at 400F until the skin is crisp and the juices run clear.",
		PrepTime: 40,
		CookTime: 35,
	},
	{
		Name:        "Weeknight Bolognese",
		Category:    model.CategoryPasta,
		Signature:   "Dad",
		Ingredients: []string{"ground beef", "onion", "carrot", "celery", "crushed tomatoes", "spaghetti", "parmesan"},
		Instructions: "Brown the beef with the vegetables, add tomatoes and simmer 45 minutes. " +
			"Toss with spaghetti and finish with parmesan.",
		PrepTime: 15,
		CookTime: 60,
	},
	{
		Name:         "Seared Salmon with Greens",
		Category:     model.CategorySeafood,
		Ingredients:  []string{"salmon fillets", "spinach", "butter", "lemon", "salt"},
		Instructions: "Sear the salmon skin-side down, baste with butter, and serve over wilted spinach.",
		PrepTime:     10,
		CookTime:     12,
	},
	{
		Name:        "Black Bean Tacos",
		Category:    model.CategoryVegetarian,
		Signature:   "Aunt May",
		Ingredients: []string{"black beans", "corn tortillas", "avocado", "lime", "cilantro", "cotija"},
		Instructions: "Warm the beans with cumin and a splash of water. " +
			"Fill the tortillas and top with avocado, cilantro and cotija.",
		PrepTime: 10,
		CookTime: 10,
	},
	{
		Name:         "Overnight Oat Cups",
		Category:     model.CategoryMacroFriendly,
		Ingredients:  []string{"rolled oats", "greek yogurt", "milk", "protein powder", "blueberries"},
		Instructions: "Stir everything together in jars and refrigerate overnight.",
		PrepTime:     5,
		CookTime:     0,
	},
	{
		Name:        "Apple Crumble",
		Category:    model.CategoryDesserts,
		Signature:   "Grandma Ruth",
		Ingredients: []string{"apples", "flour", "oats", "brown sugar", "butter", "cinnamon"},
		Instructions: "Toss sliced apples with cinnamon and sugar, cover with the crumble topping, " +
			"and bake at 375F until golden and bubbling.",
		PrepTime: 20,
		CookTime: 45,
	},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_USER_EMAIL")))
	if email == "" {
		email = "seed@example.com"
	}
	password := os.Getenv("SEED_USER_PASSWORD")
	if password == "" {
		password = "seed-password"
	}

	user, err := ensureUser(db, email, password)
	if err != nil {
		log.Fatalf("failed to ensure seed user: %v", err)
	}

	created := 0
	for _, seed := range seedRecipes {
		var count int64
		if err := db.Model(&model.Recipe{}).
			Where("user_id = ? AND name = ?", user.ID, seed.Name).
			Count(&count).Error; err != nil {
			log.Fatalf("failed to check for existing recipe %q: %v", seed.Name, err)
		}
		if count > 0 {
			fmt.Printf("Skipping existing recipe: %s\n", seed.Name)
			continue
		}

		recipe := model.Recipe{
			Name:         seed.Name,
			Category:     seed.Category,
			Signature:    seed.Signature,
			Ingredients:  model.CommaSeparatedList(seed.Ingredients),
			Instructions: seed.Instructions,
			PrepTime:     seed.PrepTime,
			CookTime:     seed.CookTime,
			UserID:       user.ID,
		}
		recipe.Normalize()

		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("failed to create recipe %q: %v", seed.Name, err)
		}
		fmt.Printf("Created recipe: %s\n", seed.Name)
		created++
	}

	fmt.Printf("Seeding complete: %d recipes created for %s\n", created, email)
}

func ensureUser(db *gorm.DB, email, password string) (*model.User, error) {
	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = model.User{Email: email, PasswordHash: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	fmt.Printf("Created seed user: %s\n", email)
	return &user, nil
}
