package engine

import "strings"

// Fixed reply texts. The boundary layers reuse EmptyMessageReply and
// ProcessingErrorReply for their own short-circuit paths.
const (
	EmptyMessageReply    = "لطفاً پیام خود را وارد کنید."
	ProcessingErrorReply = "متأسفانه در پردازش سوال شما مشکلی پیش آمد. لطفاً دوباره تلاش کنید."

	insultReply = "لطفاً از استفاده از الفاظ توهین‌آمیز خودداری کنید. این نوع رفتار مناسب نیست و ما برای ارائه خدمات حرفه‌ای و محترمانه اینجا هستیم. اگر سوال یا مشکل خاصی دارید، خوشحال می‌شویم به شما کمک کنیم."
	sizeReply   = "برای انتخاب سایز مناسب، می‌توانید از جدول سایز در صفحه محصول استفاده کنید. اگر بین دو سایز مردد هستید، قد، وزن و فرم بدن خود را برای ما بفرستید تا بهترین سایز را پیشنهاد کنیم."
	shippingReply = "سفارش‌ها با توجه به برنامه تولید و حجم درخواست‌ها در صف ارسال هستند. تمام بسته‌ها 100% به دست مشتری می‌رسند. پس از ارسال، کد رهگیری برای شما فعال می‌شود."
	returnReply   = "به علت تولید اختصاصی و برنامه‌ریزی سفارش‌ها، بازگشت وجه ممکن نیست. این رویه برای حفظ کیفیت و برنامه ارسال ضروری است. لطفاً قبل از خرید، سایز و مشخصات را به دقت بررسی کنید."
	qualityReply  = "تمام محصولات تولید داخلی هستند و از مواد با کیفیت تهیه شده‌اند. جزئیات جنس و ویژگی‌های هر محصول در صفحه محصول موجود است."
	priceReply    = "قیمت محصولات بر اساس متریال، هزینه تولید و کیفیت نهایی تعیین می‌شود. تمام قیمت‌ها واقعی و منطقی هستند."
	howReply      = "برای راهنمایی دقیق‌تر، لطفاً سوال خود را به صورت مشخص‌تر مطرح کنید. مثلاً: 'چطور سایز مناسب را انتخاب کنم؟' یا 'چطور می‌توانم سفارشم را پیگیری کنم؟'"
	yesNoReply    = "بله، می‌توانم در این مورد کمک کنم. لطفاً سوال خود را کامل‌تر بیان کنید."
	unclearReply  = "متوجه نشدم پیام شما چه معنایی دارد. لطفاً پیام خود را واضح و خوانا بنویسید تا بتوانم پاسخ درست به شما بدهم."
)

// defaultReplies and suggestions feed the randomized fallback branch.
var defaultReplies = []string{
	"ممنون از سوال شما. لطفاً کمی بیشتر توضیح دهید تا بهتر بتوانم کمک کنم.",
	"سوال خوبی پرسیدید! برای پاسخ دقیق‌تر، می‌توانید با پشتیبانی تماس بگیرید.",
	"متوجه سوال شما شدم. در حال حاضر اطلاعات کامل برای پاسخ ندارم.",
	"سوال شما ثبت شد. تیم پشتیبانی به زودی با شما تماس خواهند گرفت.",
}

var suggestions = []string{
	"\n\nاگر سوال خاصی درباره سایز، ارسال، کیفیت یا قیمت دارید، بپرسید.",
	"\n\nبرای پیگیری سفارش، شماره سفارش خود را بفرستید.",
	"\n\nمی‌توانید سوالات متداول را در بخش FAQ مشاهده کنید.",
}

// Respond produces the reply for a message against the given FAQ
// collection. Precedence: empty input, FAQ match, lexicon context reply,
// unclear short input, randomized default acknowledgement. The only
// non-deterministic branch is the last one, driven by the engine's
// injected random source.
func (e *Engine) Respond(message string, entries []FaqEntry) Reply {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{Reply: EmptyMessageReply, Confidence: 0, Source: SourceEmpty}
	}

	if answer, score := e.FindBestAnswer(message, entries); answer != "" {
		return Reply{Reply: answer, Confidence: score, Source: SourceFAQ}
	}

	matches := e.Classify(message)
	if text := e.contextReply(message, matches); text != "" {
		return Reply{Reply: text, Confidence: 0.7, Source: SourceContext}
	}

	if len([]rune(Normalize(message))) < 3 {
		return Reply{Reply: unclearReply, Confidence: 0.3, Source: SourceUnclear}
	}

	e.mu.Lock()
	text := defaultReplies[e.rng.Intn(len(defaultReplies))] + suggestions[e.rng.Intn(len(suggestions))]
	e.mu.Unlock()

	return Reply{Reply: text, Confidence: 0.4, Source: SourceDefault}
}

// contextReply picks the fixed lexicon-driven reply, or "" when no branch
// applies. The branch order is part of the contract.
func (e *Engine) contextReply(message string, matches map[string][]string) string {
	lower := strings.ToLower(message)

	if _, ok := matches[CategoryInsult]; ok {
		return insultReply
	}
	if e.CheckHumanRequest(message) {
		return e.Handoff()
	}
	if _, ok := matches[CategorySize]; ok {
		return sizeReply
	}
	if hasAny(matches, CategoryDelivery, CategoryTracking) {
		return shippingReply
	}
	if _, ok := matches[CategoryReturn]; ok {
		return returnReply
	}
	if _, ok := matches[CategoryQuality]; ok {
		return qualityReply
	}
	if _, ok := matches[CategoryPrice]; ok {
		return priceReply
	}
	if strings.Contains(lower, "چطور") || strings.Contains(lower, "چگونه") {
		return howReply
	}
	if strings.HasPrefix(lower, "آیا") {
		return yesNoReply
	}
	return ""
}

func hasAny(matches map[string][]string, categories ...string) bool {
	for _, cat := range categories {
		if _, ok := matches[cat]; ok {
			return true
		}
	}
	return false
}
