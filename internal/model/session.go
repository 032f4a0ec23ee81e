package model

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one entry of a session's conversation log. User turns
// carry Content and HasImages; assistant turns carry Intent and Result (or
// Content for plain chat replies). Turns are appended, never mutated.
type ConversationTurn struct {
	Role      string `json:"role"`
	Content   string `json:"content,omitempty"`
	HasImages bool   `json:"has_images,omitempty"`
	Intent    string `json:"intent,omitempty"`
	Result    any    `json:"result,omitempty"`
}

// UserProfile holds a user's durable preferences. Saved wholesale on every
// profile-save call; there is no partial update or merge.
type UserProfile struct {
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	HealthCondition    string   `json:"health_condition"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Allergies          []string `json:"allergies"`
	TargetCalories     int      `json:"target_calories"`
	ActivityLevel      string   `json:"activity_level"`
}
