package model

// DetectedFood is one recognized dish label. Confidence is a 0-100
// percentage. Foods are deduplicated by name within one recognition call;
// there is no cross-call identity.
type DetectedFood struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// DishDetection groups the foods recognized on one image of a multi-image
// comparison, in request order.
type DishDetection struct {
	DishNumber int            `json:"dish_number"`
	Foods      []DetectedFood `json:"foods"`
}

// MealDetection groups the foods recognized for one meal of a daily
// calorie-tracking request.
type MealDetection struct {
	MealName string         `json:"meal_name"`
	Foods    []DetectedFood `json:"foods"`
}

// IntentAnalysis is the classifier's verdict for one incoming message.
// Immutable after creation; kept only in the response and the conversation
// log entry.
type IntentAnalysis struct {
	Intent             string         `json:"intent"`
	Confidence         float64        `json:"confidence"`
	SuggestedParams    map[string]any `json:"suggested_params"`
	Explanation        string         `json:"explanation"`
	AlternativeActions []string       `json:"alternative_actions"`
	MissingInfo        []string       `json:"missing_info"`
	NextSuggestions    []string       `json:"next_suggestions"`
}
