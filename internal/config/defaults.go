package config

// DefaultConfig returns the built-in configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:        8080,
		ServiceName: "APM Chatbot API",
		FAQFile:     "static/faq.json",
		StaticDir:   "static",
		StaticAllow: []string{
			"*.json",
			"*.js",
			"*.css",
			"*.html",
			"img/**",
		},
		AllowAllOrigins: true,
		InstagramHandle: "@apmshow_",
	}
}

// DefaultTrainingText is the embedded shop knowledge ingested at startup
// when no training file is configured.
const DefaultTrainingText = `
فروشگاه لباس، کفش، کیف و اکسسوری
سوالات کاربران: پیگیری سفارش، تأخیر، وضعیت بسته‌ها، سایز و اندازه، جنس و کیفیت محصول، بازگشت وجه، قیمت، زمان ارسال
تأخیر در ارسال: به دلیل حجم بالای سفارشات و تولیدی بودن مجموعه، برخی سفارشات زمان‌بر می‌شوند. تمام سفارشات ۱۰۰٪ به دست مشتری می‌رسند
انتخاب سایز: برای انتخاب سایز مناسب از جدول سایز در صفحه محصول استفاده کنید. در صورت نیاز به راهنمایی با پشتیبانی تماس بگیرید
بازگشت وجه: به دلیل تولید اختصاصی و برنامه‌ریزی سفارشات، بازگشت وجه پس از شروع تولید امکان‌پذیر نیست
کیفیت محصولات: تمام محصولات تولید داخلی با مواد با کیفیت هستند. جزئیات در صفحه محصول موجود است
زمان ارسال: معمولاً ۲ تا ۵ روز کاری. در زمان‌های شلوغ ممکن است کمی بیشتر طول بکشد
`
