package articles

// Fallback seeds demo mode and covers an unreachable or empty backend.
var Fallback = []Article{
	{
		ID:        "1",
		Title:     "OpenAI Ra Mắt GPT-5: Những Điều Cần Biết",
		Excerpt:   "OpenAI vừa công bố GPT-5 với khả năng suy luận nâng cao và xử lý đa phương thức mạnh mẽ.",
		Thumbnail: "/images/articles/gpt5.jpg",
		Author:    "Xiaohu",
		Date:      "2026-01-27",
		Category:  CategoryNews,
		Views:     15680,
		Likes:     892,
		Comments:  156,
		IsVip:     false,
		Tags:      []string{"OpenAI", "GPT-5", "LLM"},
	},
	{
		ID:        "2",
		Title:     "Cách Kiếm Tiền Với AI Video Generation",
		Excerpt:   "Hướng dẫn chi tiết cách sử dụng AI để tạo video và kiếm tiền online.",
		Thumbnail: "/images/articles/ai-money.jpg",
		Author:    "Money Maker",
		Date:      "2026-01-26",
		Category:  CategoryMonetization,
		Views:     8900,
		Likes:     567,
		Comments:  89,
		IsVip:     true,
		Tags:      []string{"Kiếm tiền", "Video AI", "Business"},
	},
}
