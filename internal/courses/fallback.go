package courses

// Fallback is the built-in dataset: it seeds demo mode and stays on screen
// when the backend is unreachable or returns nothing, so the UI is never
// empty.
var Fallback = []Course{
	{
		ID:          "1",
		Title:       "Keling AI: Từ Cơ Bản Đến Chuyên Gia",
		Instructor:  "Xiaohu",
		Thumbnail:   "/images/courses/keling.jpg",
		Duration:    "6.5 giờ",
		LessonCount: 29,
		Category:    CategoryVideoAI,
		Description: "Khóa học toàn diện về Keling AI - công cụ tạo video AI hàng đầu Trung Quốc.",
		IsVip:       true,
		Students:    2840,
		Rating:      4.9,
	},
	{
		ID:          "2",
		Title:       "ChatGPT Mastery: Prompt Engineering Pro",
		Instructor:  "AI Master",
		Thumbnail:   "/images/courses/chatgpt.jpg",
		Duration:    "8 giờ",
		LessonCount: 35,
		Category:    CategoryPromptEngineering,
		Description: "Học cách viết prompt chuyên nghiệp để khai thác tối đa sức mạnh của ChatGPT.",
		IsVip:       true,
		Students:    5200,
		Rating:      4.8,
	},
	{
		ID:          "3",
		Title:       "Midjourney: Tạo Hình Ảnh AI Đỉnh Cao",
		Instructor:  "Creative Studio",
		Thumbnail:   "/images/courses/midjourney.jpg",
		Duration:    "5 giờ",
		LessonCount: 22,
		Category:    CategoryImageCreation,
		Description: "Làm chủ Midjourney từ cơ bản đến nâng cao với các kỹ thuật prompt chuyên sâu.",
		IsVip:       false,
		Price:       299000,
		Students:    3100,
		Rating:      4.7,
	},
}
