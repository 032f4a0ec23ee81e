package usecase

import "testing"

func TestSanitizeJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain JSON untouched",
			in:   `{"intent":"chat"}`,
			want: `{"intent":"chat"}`,
		},
		{
			name: "json fence",
			in:   "```json\n{\"intent\":\"chat\"}\n```",
			want: `{"intent":"chat"}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"intent\":\"chat\"}\n```",
			want: `{"intent":"chat"}`,
		},
		{
			name: "prose around object",
			in:   "Đây là kết quả: {\"intent\":\"chat\"} mong bạn hài lòng",
			want: `{"intent":"chat"}`,
		},
		{
			name: "array payload",
			in:   "kết quả [1, 2, 3] nhé",
			want: "[1, 2, 3]",
		},
		{
			name: "no JSON at all",
			in:   "xin lỗi, tôi không trả lời được",
			want: "xin lỗi, tôi không trả lời được",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tc.in); got != tc.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
