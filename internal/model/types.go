package model

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// FoodEntry is one logged food item. Immutable once created; the only
// mutation is removal from its owning DailyLog.
type FoodEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein"`
	CarbsG   int    `json:"carbs"`
	FatG     int    `json:"fat"`
	Meal     string `json:"meal"`
}

// ExerciseEntry is one logged exercise session; calories are burned.
type ExerciseEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration"`
	Calories    int    `json:"calories"`
}

// DailyLog holds the food and exercise records for one calendar date.
// Both sequences preserve append order.
type DailyLog struct {
	Food     []FoodEntry     `json:"food"`
	Exercise []ExerciseEntry `json:"exercise"`
}

// CustomFood is a reusable food template. It carries no id or meal; those
// are assigned when the template is logged into a DailyLog.
type CustomFood struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein"`
	CarbsG   int    `json:"carbs"`
	FatG     int    `json:"fat"`
}

// MacronutrientGoals are target grams per day, independent of the calorie goal.
type MacronutrientGoals struct {
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fat"`
}

// UserProfile describes the user. Nil means "not yet provided", not zero.
type UserProfile struct {
	Age           *int     `json:"age"`
	WeightKg      *float64 `json:"weight"`
	HeightCm      *float64 `json:"height"`
	Sex           *string  `json:"sex"`
	ActivityLevel string   `json:"activityLevel"`
}

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// AppState is the aggregate root: the complete persisted application data
// snapshot. It is the unit of persistence; every mutation serializes the
// whole value to durable storage.
type AppState struct {
	DailyGoal          int                 `json:"dailyGoal"`
	MacronutrientGoals MacronutrientGoals  `json:"macronutrientGoals"`
	Logs               map[string]DailyLog `json:"logs"`
	CustomFoods        []CustomFood        `json:"customFoods"`
	APIKey             *string             `json:"apiKey"`
	AIModel            string              `json:"aiModel"`
	Language           string              `json:"language"`
	UserProfile        UserProfile         `json:"userProfile"`
	ChatHistory        []ChatMessage       `json:"chatHistory"`
}
