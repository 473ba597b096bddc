package interview

import "fmt"

type messageID int

const (
	msgNoAnswer messageID = iota
	msgAnswerStrong
	msgAnswerAdequate
	msgAnswerWeak
	msgTipLength
	msgTipStructure
	msgTipExamples
	msgTipConfidence
	msgTipKeywords
	msgTipOffTopic

	msgCategoryClarity
	msgCategoryStructure
	msgCategoryDepth
	msgCategoryRelevance
	msgCategoryKeywords
	msgCommentHigh
	msgCommentMedium
	msgCommentLow

	msgStrengthClarity
	msgStrengthStructure
	msgStrengthDepth
	msgStrengthRelevance
	msgStrengthKeywords
	msgStrengthConfidence

	msgImproveClarity
	msgImproveStructure
	msgImproveDepth
	msgImproveRelevance
	msgImproveKeywords
	msgImproveConfidence
	msgImproveUnanswered

	msgSummaryHire
	msgSummaryConsider
	msgSummaryReject
	msgSummaryEmpty

	msgCount
)

var messagesEN = [...]string{
	msgNoAnswer:       "No answer was given to this question.",
	msgAnswerStrong:   "Strong answer.",
	msgAnswerAdequate: "Adequate answer with room to improve.",
	msgAnswerWeak:     "Weak answer.",
	msgTipLength:      "Give a more detailed answer.",
	msgTipStructure:   "Structure it as situation, task, action and result.",
	msgTipExamples:    "Back it up with a concrete example or numbers.",
	msgTipConfidence:  "Avoid hedging phrases and state your point directly.",
	msgTipKeywords:    "Mention the key technologies the role asks for.",
	msgTipOffTopic:    "The answer drifts away from the question.",

	msgCategoryClarity:   "Clarity",
	msgCategoryStructure: "Structure",
	msgCategoryDepth:     "Depth & Evidence",
	msgCategoryRelevance: "Relevance",
	msgCategoryKeywords:  "Keyword Match",
	msgCommentHigh:       "%s is a clear strength.",
	msgCommentMedium:     "%s is acceptable but could be sharper.",
	msgCommentLow:        "%s needs significant work.",

	msgStrengthClarity:    "Answers are clear and of a good length.",
	msgStrengthStructure:  "Answers follow a logical structure.",
	msgStrengthDepth:      "Claims are supported with concrete examples.",
	msgStrengthRelevance:  "Answers stay focused on the questions asked.",
	msgStrengthKeywords:   "Covers the key technologies for the role.",
	msgStrengthConfidence: "Speaks with confidence.",

	msgImproveClarity:    "Develop answers in more detail.",
	msgImproveStructure:  "Use a clear structure such as STAR (situation, task, action, result).",
	msgImproveDepth:      "Add concrete examples, metrics and outcomes.",
	msgImproveRelevance:  "Address the question more directly.",
	msgImproveKeywords:   "Demonstrate knowledge of the required technologies.",
	msgImproveConfidence: "Reduce hedging language such as \"I think\" or \"maybe\".",
	msgImproveUnanswered: "Answer every question, even briefly.",

	msgSummaryHire:     "Strong interview: %d/100 across %d of %d answered questions. Recommended for hire.",
	msgSummaryConsider: "Solid interview: %d/100 across %d of %d answered questions. Worth considering.",
	msgSummaryReject:   "Weak interview: %d/100 across %d of %d answered questions. Not recommended at this time.",
	msgSummaryEmpty:    "No interview answers were available to evaluate.",
}

var messagesVI = [...]string{
	msgNoAnswer:       "Ứng viên không trả lời câu hỏi này.",
	msgAnswerStrong:   "Câu trả lời tốt.",
	msgAnswerAdequate: "Câu trả lời đạt yêu cầu nhưng có thể cải thiện.",
	msgAnswerWeak:     "Câu trả lời còn yếu.",
	msgTipLength:      "Hãy trả lời chi tiết hơn.",
	msgTipStructure:   "Trình bày theo tình huống, nhiệm vụ, hành động và kết quả.",
	msgTipExamples:    "Đưa ra ví dụ cụ thể hoặc số liệu.",
	msgTipConfidence:  "Hạn chế các cụm từ do dự, hãy nói thẳng vào ý chính.",
	msgTipKeywords:    "Đề cập đến các công nghệ chính mà vị trí yêu cầu.",
	msgTipOffTopic:    "Câu trả lời đi lệch khỏi câu hỏi.",

	msgCategoryClarity:   "Độ rõ ràng",
	msgCategoryStructure: "Cấu trúc",
	msgCategoryDepth:     "Chiều sâu & Dẫn chứng",
	msgCategoryRelevance: "Mức độ liên quan",
	msgCategoryKeywords:  "Từ khóa",
	msgCommentHigh:       "%s là điểm mạnh rõ rệt.",
	msgCommentMedium:     "%s ở mức chấp nhận được nhưng cần sắc nét hơn.",
	msgCommentLow:        "%s cần cải thiện nhiều.",

	msgStrengthClarity:    "Câu trả lời rõ ràng và đủ ý.",
	msgStrengthStructure:  "Câu trả lời có cấu trúc logic.",
	msgStrengthDepth:      "Có ví dụ cụ thể để chứng minh.",
	msgStrengthRelevance:  "Trả lời đúng trọng tâm câu hỏi.",
	msgStrengthKeywords:   "Nắm được các công nghệ chính của vị trí.",
	msgStrengthConfidence: "Trả lời tự tin.",

	msgImproveClarity:    "Phát triển câu trả lời chi tiết hơn.",
	msgImproveStructure:  "Sử dụng cấu trúc rõ ràng như STAR (tình huống, nhiệm vụ, hành động, kết quả).",
	msgImproveDepth:      "Bổ sung ví dụ, số liệu và kết quả cụ thể.",
	msgImproveRelevance:  "Trả lời trực tiếp vào câu hỏi hơn.",
	msgImproveKeywords:   "Thể hiện kiến thức về các công nghệ được yêu cầu.",
	msgImproveConfidence: "Giảm các cụm từ do dự như \"tôi nghĩ\" hay \"có lẽ\".",
	msgImproveUnanswered: "Hãy trả lời tất cả câu hỏi, dù ngắn gọn.",

	msgSummaryHire:     "Buổi phỏng vấn tốt: %d/100, trả lời %d/%d câu hỏi. Đề xuất tuyển.",
	msgSummaryConsider: "Buổi phỏng vấn khá: %d/100, trả lời %d/%d câu hỏi. Có thể cân nhắc.",
	msgSummaryReject:   "Buổi phỏng vấn chưa đạt: %d/100, trả lời %d/%d câu hỏi. Chưa phù hợp ở thời điểm này.",
	msgSummaryEmpty:    "Không có câu trả lời nào để đánh giá.",
}

// Both tables must cover every message id.
var (
	_ = [1]struct{}{}[len(messagesEN)-int(msgCount)]
	_ = [1]struct{}{}[len(messagesVI)-int(msgCount)]
)

func tr(lang Language, id messageID, args ...any) string {
	table := messagesEN[:]
	if lang == LanguageVI {
		table = messagesVI[:]
	}
	if len(args) == 0 {
		return table[id]
	}
	return fmt.Sprintf(table[id], args...)
}
