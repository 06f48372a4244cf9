package tools

// Fallback seeds demo mode and covers an unreachable or empty backend.
var Fallback = []Tool{
	{
		ID:          "1",
		Name:        "Keling AI",
		Description: "Công cụ tạo video AI hàng đầu từ Kuaishou với khả năng điều khiển camera nâng cao.",
		Logo:        "/images/tools/keling.png",
		Category:    CategoryVideo,
		URL:         "https://keling.ai",
		IsFeatured:  true,
		Tags:        []string{"Video", "Lip-sync", "Camera Control"},
	},
	{
		ID:          "2",
		Name:        "ChatGPT",
		Description: "AI chatbot mạnh mẽ nhất từ OpenAI với khả năng đối thoại và xử lý đa tác vụ.",
		Logo:        "/images/tools/chatgpt.png",
		Category:    CategoryText,
		URL:         "https://chat.openai.com",
		IsFeatured:  true,
		Tags:        []string{"Chatbot", "Writing", "Coding"},
	},
	{
		ID:          "3",
		Name:        "Midjourney",
		Description: "Công cụ tạo hình ảnh AI với chất lượng nghệ thuật cao.",
		Logo:        "/images/tools/midjourney.png",
		Category:    CategoryImage,
		URL:         "https://midjourney.com",
		IsFeatured:  true,
		Tags:        []string{"Image", "Art", "Design"},
	},
}
