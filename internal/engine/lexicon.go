package engine

import "strings"

// Category is a named topic with an ordered list of trigger substrings.
type Category struct {
	Name     string
	Triggers []string
}

// Category names used by the response policy.
const (
	CategorySize     = "size"
	CategoryDelivery = "delivery"
	CategoryTracking = "tracking"
	CategoryQuality  = "quality"
	CategoryReturn   = "return"
	CategoryPrice    = "price"
	CategoryHuman    = "human"
	CategoryInsult   = "insult"
)

// DefaultLexicon returns the built-in category lexicon. Order matters:
// classification and the similarity keyword boost walk it front to back.
func DefaultLexicon() []Category {
	return []Category{
		{Name: CategorySize, Triggers: []string{"سایز", "اندازه", "بزرگ", "کوچک", "م", "ال", "ایکس ال", "xs", "s", "m", "l", "xl", "xxl"}},
		{Name: CategoryDelivery, Triggers: []string{"زمان ارسال", "زمان تحویل", "کی میرسه", "چند روزه", "ارسال", "تحویل", "پست", "پیک"}},
		{Name: CategoryTracking, Triggers: []string{"پیگیری", "رهگیری", "کد رهگیری", "وضعیت سفارش", "سفارشم کجاست"}},
		{Name: CategoryQuality, Triggers: []string{"کیفیت", "جنس", "مرغوب", "متریال", "پارچه", "چرم", "نخ", "دوخت"}},
		{Name: CategoryReturn, Triggers: []string{"مرجوع", "بازگشت", "عودت", "برگشت وجه", "پول", "تضمین"}},
		{Name: CategoryPrice, Triggers: []string{"قیمت", "هزینه", "ارزان", "گران", "تخفیف", "حراج"}},
		{Name: CategoryHuman, Triggers: []string{"انسان", "اپراتور", "واقعی", "زنده", "پشتیبان", "مشاور", "صحبت با انسان"}},
		{Name: CategoryInsult, Triggers: []string{"احمق", "خر", "بی شعور", "کثافت", "نادان", "بی ادب", "فحش", "توهین"}},
	}
}

// humanPhrases are checked against the raw lowercased message, in addition
// to the "human" lexicon category.
var humanPhrases = []string{
	"انسان", "اپراتور", "واقعی", "زنده",
	"پشتیبان انسانی", "مشاور انسانی", "صحبت با انسان", "آدم واقعی",
}

// Classify maps the normalized text to lexicon categories. A trigger counts
// on plain substring containment, not word boundaries, so short triggers
// fire inside longer words. Categories with no matches are omitted.
func (e *Engine) Classify(text string) map[string][]string {
	norm := Normalize(text)

	matches := make(map[string][]string)
	for _, cat := range e.lexicon {
		for _, trigger := range cat.Triggers {
			if strings.Contains(norm, trigger) {
				matches[cat.Name] = append(matches[cat.Name], trigger)
			}
		}
	}
	return matches
}

// CheckHumanRequest reports whether the message asks for a human operator,
// either via a fixed phrase on the raw lowercased text or via the "human"
// lexicon category.
func (e *Engine) CheckHumanRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range humanPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	_, ok := e.Classify(text)[CategoryHuman]
	return ok
}

// CheckInsult reports whether the message contains insulting language.
func (e *Engine) CheckInsult(text string) bool {
	_, ok := e.Classify(text)[CategoryInsult]
	return ok
}
