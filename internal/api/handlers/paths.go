package handlers

import "fmt"

func recipeDetailPath(recipeID int64) string {
	return fmt.Sprintf("/recipes/%d", recipeID)
}

func recipeEditPath(recipeID int64) string {
	return fmt.Sprintf("/recipes/%d/edit", recipeID)
}

func componentWizardPath(recipeID int64) string {
	return fmt.Sprintf("/recipes/%d/components/new", recipeID)
}

func componentEditPath(recipeID int64) string {
	return fmt.Sprintf("/recipes/%d/components/edit", recipeID)
}

func userEditPath(userID int64) string {
	return fmt.Sprintf("/users/edit/%d", userID)
}

func categoryDeletePath(categoryID int64) string {
	return fmt.Sprintf("/admin/categories/%d/delete", categoryID)
}
