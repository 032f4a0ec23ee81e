package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"nutrition-agent/internal/model"
	"nutrition-agent/internal/nutrition"
)

// AgentSystemPrompt is the assistant persona sent with every text
// completion, including intent classification.
const AgentSystemPrompt = `Bạn là AI Agent dinh dưỡng thông minh của Việt Nam với khả năng:

🤖 NHIỆM VỤ CHÍNH:
- Phân tích ý định người dùng từ câu hỏi/yêu cầu
- Tự động gợi ý chức năng phù hợp nhất
- Thực hiện nhiều tác vụ liên tiếp nếu cần
- Học từ ngữ cảnh hội thoại

🎯 CÁC CHỨC NĂNG KHẢ DỤNG:
1. analyze_food - Phân tích món ăn từ ảnh
2. compare_foods - So sánh nhiều món ăn
3. track_calories - Theo dõi calo trong ngày
4. quick_scan - Quét nhanh nhận diện món
5. meal_suggestion - Gợi ý món cho 1 bữa
6. weekly_menu - Lập thực đơn tuần
7. detailed_recipes - Công thức nấu chi tiết
8. chat - Tư vấn tự do

📋 QUY TẮC PHÂN TÍCH Ý ĐỊNH:
- Nếu có ảnh → ưu tiên analyze_food hoặc quick_scan
- Nếu nhiều ảnh → compare_foods hoặc track_calories
- Nếu hỏi về thực đơn → meal_suggestion hoặc weekly_menu
- Nếu hỏi công thức → detailed_recipes
- Nếu chat thông thường → chat

🔄 KHẢ NĂNG TỰ ĐỘNG:
- Phát hiện thiếu thông tin và hỏi lại
- Gợi ý bước tiếp theo sau mỗi tác vụ
- Kết hợp nhiều chức năng nếu phù hợp
- Học preferences người dùng

💡 PHONG CÁCH:
- Thân thiện, chủ động gợi ý
- Giải thích lý do chọn chức năng
- Đưa ra nhiều lựa chọn cho user
- Ưu tiên món ăn Việt Nam`

// buildIntentContext assembles the classification prompt: the raw message,
// image count, the last turns of history, the operation catalog, and the
// required JSON output shape.
func buildIntentContext(message string, imageCount int, history []model.ConversationTurn) string {
	imagesLine := "Không"
	if imageCount > 0 {
		imagesLine = fmt.Sprintf("Có %d ảnh", imageCount)
	}

	historyLine := "Chưa có"
	if len(history) > 0 {
		recent := history
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		if encoded, err := json.Marshal(recent); err == nil {
			historyLine = string(encoded)
		}
	}

	type opSummary struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	summaries := make([]opSummary, 0, len(nutrition.Catalog()))
	for _, spec := range nutrition.Catalog() {
		summaries = append(summaries, opSummary{Name: spec.Name, Description: spec.Description})
	}
	catalogJSON, _ := json.MarshalIndent(summaries, "", "  ")

	return fmt.Sprintf(`
Phân tích yêu cầu của người dùng và đề xuất chức năng phù hợp.

**Tin nhắn người dùng:** %s
**Có ảnh đính kèm:** %s
**Lịch sử hội thoại:** %s

**Các chức năng khả dụng:**
%s

Hãy trả về JSON với cấu trúc:
{
    "intent": "tên_function_phù_hợp",
    "confidence": 0.0-1.0,
    "suggested_params": {...},
    "explanation": "Giải thích ngắn gọn tại sao chọn function này",
    "alternative_actions": ["function_khác_1", "function_khác_2"],
    "missing_info": ["thông_tin_cần_hỏi_thêm"],
    "next_suggestions": ["gợi_ý_hành_động_tiếp_theo"]
}

Ví dụ:
- User: "Món này bao nhiêu calo?" + có ảnh → intent: "analyze_food"
- User: "Tôi nên ăn gì cho bữa trưa?" → intent: "meal_suggestion"
- User: "So sánh 2 món này" + nhiều ảnh → intent: "compare_foods"
`, message, imagesLine, historyLine, string(catalogJSON))
}

func buildAnalyzePrompt(foods []model.DetectedFood, healthCondition, dietaryGoals string) string {
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		names = append(names, fmt.Sprintf("%s (%.2f%%)", f.Name, f.Confidence))
	}

	return fmt.Sprintf(`Phân tích món ăn cho người %s, mục tiêu %s.
Món đã nhận diện: %s

Trả lời ngắn gọn:
1. Xác nhận món ăn
2. Calo và dinh dưỡng chính
3. Đánh giá phù hợp (⭐ 1-5)
4. Ưu/nhược điểm
5. Gợi ý cải thiện`, healthCondition, dietaryGoals, strings.Join(names, ", "))
}

func buildComparePrompt(dishes []model.DishDetection, healthCondition string) string {
	var sb strings.Builder
	for _, d := range dishes {
		names := make([]string, 0, len(d.Foods))
		for _, f := range d.Foods {
			names = append(names, f.Name)
		}
		sb.WriteString(fmt.Sprintf("- Món %d: %s\n", d.DishNumber, strings.Join(names, ", ")))
	}

	return fmt.Sprintf(`So sánh %d món ăn cho người %s.
Các món: %s

Trả về:
1. Bảng so sánh calo, protein, carb
2. Xếp hạng từ tốt → kém
3. Khuyến nghị nên chọn món nào`, len(dishes), healthCondition, sb.String())
}

func buildTrackPrompt(meals []model.MealDetection, targetCalories int, healthCondition string) string {
	var sb strings.Builder
	for _, m := range meals {
		names := make([]string, 0, len(m.Foods))
		for _, f := range m.Foods {
			names = append(names, f.Name)
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", m.MealName, strings.Join(names, ", ")))
	}

	return fmt.Sprintf(`Theo dõi calo cho người %s.
Mục tiêu: %d kcal
Các bữa ăn: %s

Trả về:
1. Tổng calo đã ăn
2. So với mục tiêu (thiếu/thừa bao nhiêu)
3. Phân bố dinh dưỡng
4. Gợi ý điều chỉnh`, healthCondition, targetCalories, sb.String())
}

func buildSuggestionPrompt(mealTime, healthCondition, dietaryPreferences, budgetRange, cookingTime string) string {
	return fmt.Sprintf(`Gợi ý thực đơn bữa %s:
- Sức khỏe: %s
- Sở thích: %s
- Ngân sách: %s
- Thời gian: %s

Trả về: 2-3 món Việt phù hợp, lý do chọn, cách làm đơn giản, ước tính calo`,
		mealTime, healthCondition, dietaryPreferences, budgetRange, cookingTime)
}

func buildWeeklyMenuPrompt(healthCondition, dietaryPreferences, budgetRange, cookingTime string) string {
	return fmt.Sprintf(`Lập thực đơn 7 ngày:
- Sức khỏe: %s
- Sở thích: %s
- Ngân sách: %s/ngày
- Thời gian: %s

Format: Thứ 2-CN với 3 bữa/ngày + calo`,
		healthCondition, dietaryPreferences, budgetRange, cookingTime)
}

func buildRecipesPrompt(days int, healthCondition, dietaryPreferences, budgetRange string) string {
	return fmt.Sprintf(`Tạo công thức chi tiết %d ngày:
- Sức khỏe: %s
- Sở thích: %s
- Ngân sách: %s

Mỗi món: nguyên liệu, bước làm, calo, chi phí`,
		days, healthCondition, dietaryPreferences, budgetRange)
}
