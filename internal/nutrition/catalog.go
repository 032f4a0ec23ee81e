package nutrition

// The 8 operation names. This set is closed: the intent classifier may only
// return one of these, and the dispatcher rejects anything else.
const (
	OpAnalyzeFood     = "analyze_food"
	OpCompareFoods    = "compare_foods"
	OpTrackCalories   = "track_calories"
	OpQuickScan       = "quick_scan"
	OpMealSuggestion  = "meal_suggestion"
	OpWeeklyMenu      = "weekly_menu"
	OpDetailedRecipes = "detailed_recipes"
	OpChat            = "chat"
)

// The fixed multi-step workflow names.
const (
	WorkflowCompleteAnalysis = "complete_analysis"
	WorkflowDailyTracking    = "daily_tracking"
	WorkflowMealPlanning     = "meal_planning"
)

// Parameter defaults carried by the operations.
const (
	DefaultHealthCondition    = "khỏe mạnh"
	DefaultDietaryGoals       = "duy trì cân nặng"
	DefaultDietaryPreferences = "không"
	DefaultMealTime           = "trưa"
	DefaultMealBudget         = "100k"
	DefaultDailyBudget        = "500k"
	DefaultCookingTime        = "30 phút"
	DefaultMenuCookingTime    = "45 phút"
	DefaultTargetCalories     = 2000
	DefaultRecipeDays         = 3
	DefaultActivityLevel      = "vừa phải"
)

// OperationSpec describes one operation for the intent classifier and the
// suggest endpoint: what it does, its parameters as a JSON schema, and
// which parameters are required.
type OperationSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
	Required    []string       `json:"-"`
}

// Catalog returns the fixed operation catalog in presentation order.
func Catalog() []OperationSpec {
	return catalog
}

// FindOperation looks up an operation spec by name.
func FindOperation(name string) (OperationSpec, bool) {
	for _, spec := range catalog {
		if spec.Name == name {
			return spec, true
		}
	}
	return OperationSpec{}, false
}

// ValidOperation reports whether name belongs to the closed operation set.
func ValidOperation(name string) bool {
	_, ok := FindOperation(name)
	return ok
}

var catalog = []OperationSpec{
	{
		Name:        OpAnalyzeFood,
		Description: "Phân tích chi tiết 1 món ăn từ ảnh. Dùng khi user gửi ảnh món ăn và muốn biết thông tin dinh dưỡng, đánh giá phù hợp.",
		Parameters: map[string]any{
			"image":            param("string", "Base64 của ảnh món ăn"),
			"health_condition": paramDefault("string", "Tình trạng sức khỏe", DefaultHealthCondition),
			"dietary_goals":    paramDefault("string", "Mục tiêu dinh dưỡng", DefaultDietaryGoals),
		},
		Required: []string{"image"},
	},
	{
		Name:        OpCompareFoods,
		Description: "So sánh nhiều món ăn (2-4 món). Dùng khi user gửi nhiều ảnh và muốn biết món nào tốt hơn.",
		Parameters: map[string]any{
			"images":           param("array", "Mảng base64 của các ảnh"),
			"health_condition": paramDefault("string", "Tình trạng sức khỏe", DefaultHealthCondition),
		},
		Required: []string{"images"},
	},
	{
		Name:        OpTrackCalories,
		Description: "Theo dõi tổng calo trong ngày từ nhiều bữa ăn. Dùng khi user muốn kiểm tra calo đã ăn.",
		Parameters: map[string]any{
			"images":           param("array", "Ảnh các bữa ăn trong ngày"),
			"target_calories":  paramDefault("integer", "Mục tiêu calo/ngày", DefaultTargetCalories),
			"health_condition": paramDefault("string", "Tình trạng sức khỏe", DefaultHealthCondition),
		},
		Required: []string{"images"},
	},
	{
		Name:        OpQuickScan,
		Description: "Quét nhanh nhận diện món ăn. Dùng khi user chỉ muốn biết tên món, không cần phân tích chi tiết.",
		Parameters: map[string]any{
			"image": param("string", "Base64 của ảnh món ăn"),
		},
		Required: []string{"image"},
	},
	{
		Name:        OpMealSuggestion,
		Description: "Gợi ý thực đơn cho 1 bữa ăn. Dùng khi user hỏi 'nên ăn gì', 'gợi ý món cho bữa trưa'.",
		Parameters: map[string]any{
			"meal_time":           paramDefault("string", "Bữa nào (sáng/trưa/tối)", DefaultMealTime),
			"health_condition":    paramDefault("string", "Tình trạng sức khỏe", DefaultHealthCondition),
			"dietary_preferences": paramDefault("string", "Sở thích ăn uống", DefaultDietaryPreferences),
			"budget_range":        paramDefault("string", "Ngân sách", DefaultMealBudget),
			"cooking_time":        paramDefault("string", "Thời gian nấu", DefaultCookingTime),
		},
	},
	{
		Name:        OpWeeklyMenu,
		Description: "Lập thực đơn cả tuần (7 ngày). Dùng khi user muốn plan ăn uống cho nhiều ngày.",
		Parameters: map[string]any{
			"health_condition":    paramDefault("string", "Tình trạng sức khỏe", DefaultHealthCondition),
			"dietary_preferences": paramDefault("string", "Sở thích ăn uống", DefaultDietaryPreferences),
			"budget_range":        paramDefault("string", "Ngân sách/ngày", DefaultDailyBudget),
			"cooking_time":        paramDefault("string", "Thời gian nấu", DefaultMenuCookingTime),
		},
	},
	{
		Name:        OpDetailedRecipes,
		Description: "Tạo công thức nấu chi tiết với nguyên liệu, bước làm. Dùng khi user hỏi 'làm món X như thế nào'.",
		Parameters: map[string]any{
			"days":                paramDefault("integer", "Số ngày muốn tạo công thức", DefaultRecipeDays),
			"health_condition":    paramDefault("string", "Tình trạng sức khỏe", DefaultHealthCondition),
			"dietary_preferences": paramDefault("string", "Sở thích ăn uống", DefaultDietaryPreferences),
			"budget_range":        paramDefault("string", "Ngân sách", DefaultDailyBudget),
		},
	},
	{
		Name:        OpChat,
		Description: "Tư vấn dinh dưỡng tự do. Dùng khi user chat thông thường, không khớp chức năng nào khác.",
		Parameters:  map[string]any{},
	},
}

func param(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}

func paramDefault(typ, description string, def any) map[string]any {
	return map[string]any{"type": typ, "description": description, "default": def}
}
