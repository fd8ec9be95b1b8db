package routes

import (
	"Masterchef-Web/internal/api/handlers"
	"Masterchef-Web/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	AuthHandler      handlers.AuthHandler
	RecipeHandler    handlers.RecipeHandler
	ComponentHandler handlers.ComponentHandler
	CategoryHandler  handlers.CategoryHandler
	UserHandler      handlers.UserHandler
	PDFHandler       handlers.PDFHandler
	PageHandler      handlers.PageHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.SessionMiddleware())
	c.Public()
	c.Recipes()
	c.Users()
	c.Admin()
	// unknown paths end on the dedicated page
	c.App.Use(c.PageHandler.NotFound)
}

func (c *Config) Public() {
	c.App.Get("/", c.RecipeHandler.Home)
	c.App.Get("/recipes", c.RecipeHandler.List)
	c.App.Get("/categories", c.CategoryHandler.CategoriesPage)
	c.App.Get("/signin", c.AuthHandler.SignInPage)
	c.App.Post("/signin", c.AuthHandler.SignIn)
	c.App.Get("/signup", c.AuthHandler.SignUpPage)
	c.App.Post("/signup", c.AuthHandler.SignUp)
	c.App.Get("/access-denied", c.AuthHandler.AccessDenied)
	c.App.Get("/not-found", c.PageHandler.NotFound)
	c.App.Get("/pdf/recipe/:id", c.PDFHandler.RecipePDF)
}

func (c *Config) Recipes() {
	guard := c.Middleware.Guard(false)

	// the static segment must register before the :id wildcard
	c.App.Get("/recipes/new", guard, c.RecipeHandler.NewRecipePage)
	c.App.Post("/recipes/new", guard, c.RecipeHandler.CreateRecipe)
	c.App.Get("/recipes/:id", c.RecipeHandler.Detail)

	recipe := c.App.Group("/recipes/:id", guard)
	{
		recipe.Get("/edit", c.RecipeHandler.EditRecipePage)
		recipe.Post("/edit", c.RecipeHandler.UpdateRecipe)
		recipe.Get("/delete", c.RecipeHandler.DeleteRecipePage)
		recipe.Post("/delete", c.RecipeHandler.DeleteRecipe)

		recipe.Get("/components/new", c.ComponentHandler.WizardPage)
		recipe.Post("/components/new", c.ComponentHandler.AddDraft)
		recipe.Post("/components/remove", c.ComponentHandler.RemoveDraft)
		recipe.Post("/components/save", c.ComponentHandler.SaveAll)
		recipe.Get("/components/edit", c.ComponentHandler.EditPage)
		recipe.Post("/components/edit", c.ComponentHandler.UpdateComponents)
		recipe.Post("/components/delete", c.ComponentHandler.DeleteComponent)
	}

	c.App.Get("/my-recipes", guard, c.RecipeHandler.MyRecipes)
}

func (c *Config) Users() {
	guard := c.Middleware.Guard(false)

	c.App.Get("/users/edit", guard, c.UserHandler.EditUserPage)
	c.App.Get("/users/edit/:id", guard, c.UserHandler.EditUserPage)
	c.App.Post("/users/edit/:id", guard, c.UserHandler.UpdateUser)
	c.App.Post("/users/edit/:id/password", guard, c.UserHandler.ChangePassword)
	c.App.Post("/users/edit/:id/delete", guard, c.UserHandler.DeleteUser)
	c.App.Post("/logout", guard, c.AuthHandler.Logout)
	c.App.Get("/pdf/user/:id", guard, c.PDFHandler.UserPDF)
}

func (c *Config) Admin() {
	admin := c.App.Group("/admin", c.Middleware.Guard(true))
	{
		admin.Get("/", c.PageHandler.AdminHome)
		admin.Get("/users", c.UserHandler.AdminUsersPage)
		admin.Get("/users/:id/suspend", c.UserHandler.SuspendUserPage)
		admin.Get("/users/:id/delete", c.UserHandler.DeleteUserPage)

		admin.Get("/categories", c.CategoryHandler.AdminCategoriesPage)
		admin.Post("/categories", c.CategoryHandler.CreateCategory)
		admin.Post("/categories/:id", c.CategoryHandler.UpdateCategory)
		admin.Get("/categories/:id/delete", c.CategoryHandler.DeleteCategoryPage)
		admin.Post("/categories/:id/delete", c.CategoryHandler.DeleteCategory)
	}

	adminGuard := c.Middleware.Guard(true)
	c.App.Post("/users/edit/:id/suspend", adminGuard, c.UserHandler.SuspendUser)
	c.App.Get("/pdf/users", adminGuard, c.PDFHandler.UsersPDF)
}
