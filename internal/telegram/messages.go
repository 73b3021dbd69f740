package telegram

// Пользовательские тексты бота. Каждый путь отказа отвечает ровно одним из них.
const (
	MsgWelcome     = "🚀 Welcome to ChatNova! Type anything to start chatting."
	MsgLogoMissing = "⚠️ Logo not found! Please check the file path."

	MsgHelp = "💡 Available commands:\n" +
		"/start - Start the bot\n" +
		"/help - Show this message\n" +
		"/reset - Clear memory\n" +
		"/image <prompt> - Generate AI images\n" +
		"/search <query> - Web search"

	MsgReset = "🔄 Memory cleared! Let's start fresh."

	MsgImageUsage  = "🎨 Please provide an image prompt! Example: /image futuristic city at night"
	MsgSearchUsage = "🔍 Please enter a search query! Example: /search latest AI trends"

	MsgSearchHeader      = "🔍 Top search results:"
	MsgNoResults         = "⚠️ No results found."
	MsgSearchUnavailable = "🔍 Search is not configured on this bot."
	MsgSearchError       = "⚠️ Search failed. Please try again later."

	MsgProcessingPhoto = "📸 Processing your image..."
	MsgProcessingVoice = "🎤 Processing your voice message..."

	MsgNoDescription = "⚠️ No description available."
	MsgAIError       = "⚠️ I couldn't generate a response."
	MsgDownloadError = "⚠️ Failed to download the file."

	MsgVoiceUnintelligible = "❌ Could not understand the audio."
	MsgVoiceServiceError   = "❌ Speech recognition service error."

	MsgInternalError = "⚠️ Something went wrong. Please try again."
)
