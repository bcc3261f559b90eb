package factory

import (
	controllers "github.com/anuntech/budget-manager/internal/presentation/controllers/home"
)

func MakeIndexController() *controllers.IndexController {
	return controllers.NewIndexController()
}

func MakeGetCategoriesController() *controllers.GetCategoriesController {
	return controllers.NewGetCategoriesController()
}
