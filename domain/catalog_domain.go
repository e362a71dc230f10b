package domain

var (
	MessageSuccessGetMealTypes = "success get meal types"
	MessageSuccessGetDietaries = "success get dietaries"

	MessageFailedGetMealTypes = "failed to get meal types"
	MessageFailedGetDietaries = "failed to get dietaries"
)

type (
	MealType struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	Dietary struct {
		ID          uint   `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
)
