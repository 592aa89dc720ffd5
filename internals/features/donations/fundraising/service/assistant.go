package service

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"halaqat_backend/internals/features/donations/fundraising/model"
)

var platformTips = map[string][]string{
	"تويتر": {
		"استخدم خيوط تويتر (threads) لشرح تفاصيل الحملة",
		"انشر في أوقات الذروة (8-10 مساءً)",
		"استخدم الهاشتاغات المحلية والعالمية",
		"تفاعل مع المؤثرين الخيريين",
		"انشر صور وفيديوهات قصيرة",
	},
	"انستجرام": {
		"استخدم القصص التفاعلية مع الاستطلاعات",
		"انشر فيديوهات ريلز جذابة",
		"استخدم الألوان الدافئة والصور العاطفية",
		"اربط مع المؤثرين المحليين",
		"استخدم ميزة التبرع المباشر",
	},
	"فيسبوك": {
		"أنشئ فعالية أو صفحة للحملة",
		"استخدم البث المباشر لشرح الهدف",
		"انشر في المجموعات المهتمة",
		"استخدم ميزة جمع التبرعات في فيسبوك",
		"شارك قصص نجاح سابقة",
	},
	"لينكد إن": {
		"اكتب منشورات مهنية ومفصلة",
		"استهدف رجال الأعمال والشركات",
		"شارك التأثير المجتمعي للحملة",
		"استخدم البيانات والإحصائيات",
		"اطلب المشاركة من الزملاء",
	},
	"واتساب": {
		"أنشئ رسائل شخصية ودافئة",
		"استخدم المجموعات العائلية والأصدقاء",
		"شارك صور وفيديوهات قصيرة",
		"اطلب إعادة النشر للأقارب",
		"تابع شخصياً مع المتبرعين",
	},
}

var (
	smallTarget  = decimal.NewFromInt(5000)
	mediumTarget = decimal.NewFromInt(20000)
)

var (
	smallTargetTips = []string{
		"ابدأ بالأصدقاء والعائلة",
		"استخدم وسائل التواصل الشخصية",
		"اطلب مبالغ صغيرة من عدد أكبر",
	}
	mediumTargetTips = []string{
		"استهدف المجتمع المحلي",
		"تواصل مع الجمعيات الخيرية",
		"استخدم وسائل التواصل الاجتماعي",
	}
	largeTargetTips = []string{
		"استهدف الشركات والمؤسسات",
		"تواصل مع المؤثرين الكبار",
		"أطلق حملة إعلامية شاملة",
	}
)

var generalTips = []string{
	"اشرح بوضوح كيف ستُستخدم التبرعات",
	"شارك تحديثات دورية عن التقدم",
	"اشكر المتبرعين علناً (بإذنهم)",
	"استخدم القصص العاطفية الحقيقية",
	"كن شفافاً في التقارير المالية",
}

var postingTimes = map[string]string{
	"تويتر":    "الاثنين-الجمعة: 9 صباحاً، 1 ظهراً، 3 عصراً | عطلة نهاية الأسبوع: 12-1 ظهراً",
	"انستجرام": "الثلاثاء-الخميس: 11 صباحاً، 2 ظهراً، 5 مساءً | الجمعة: 10-11 صباحاً",
	"فيسبوك":   "الثلاثاء-الخميس: 1-3 ظهراً | الأحد: 12-1 ظهراً",
	"لينكد إن": "الثلاثاء-الخميس: 10 صباحاً-12 ظهراً | الأربعاء: الأفضل",
	"واتساب":   "في أي وقت، لكن تجنب الساعات المتأخرة (بعد 10 مساءً)",
	"تيك توك":  "الثلاثاء-الخميس: 6-10 مساءً | الجمعة: 7-9 مساءً",
	"يوتيوب":   "الخميس-السبت: 2-4 عصراً | الأحد: 9-11 صباحاً",
}

const defaultPostingTimes = "الأوقات المناسبة: 10 صباحاً - 2 ظهراً، 7-9 مساءً"

var (
	generalTags   = []string{"#خير", "#تبرع", "#مساعدة", "#عطاء", "#خيرية", "#تطوع", "#مساندة"}
	religiousTags = []string{"#صدقة", "#زكاة", "#أجر", "#خير_الناس", "#البر", "#الإحسان"}
	localTags     = []string{"#السعودية", "#الرياض", "#جدة", "#الدمام", "#مكة", "#المدينة"}
)

// Platforms lists the platforms the add form offers, in display order.
func Platforms() []string {
	return []string{"تويتر", "انستجرام", "فيسبوك", "لينكد إن", "واتساب", "تيك توك", "يوتيوب"}
}

// Suggestions is the newline-joined advice list: platform tips, then tips
// for the target's size, then general tips.
func Suggestions(platform string, target decimal.Decimal) string {
	var out []string
	out = append(out, platformTips[platform]...)
	switch {
	case target.LessThan(smallTarget):
		out = append(out, smallTargetTips...)
	case target.LessThan(mediumTarget):
		out = append(out, mediumTargetTips...)
	default:
		out = append(out, largeTargetTips...)
	}
	out = append(out, generalTips...)
	return strings.Join(out, "\n")
}

func PostingTimes(platform string) string {
	if t, ok := postingTimes[platform]; ok {
		return t
	}
	return defaultPostingTimes
}

// Assistant draws hashtags from its own random source. Safe for concurrent use.
type Assistant struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewAssistant(src rand.Source) *Assistant {
	return &Assistant{rnd: rand.New(src)}
}

// Hashtags picks 3 general, 2 religious and 2 local tags, then appends the
// campaign's own tag when it has a name.
func (a *Assistant) Hashtags(name string) string {
	a.mu.Lock()
	tags := make([]string, 0, 8)
	tags = append(tags, a.sample(generalTags, 3)...)
	tags = append(tags, a.sample(religiousTags, 2)...)
	tags = append(tags, a.sample(localTags, 2)...)
	a.mu.Unlock()

	if name = strings.TrimSpace(name); name != "" {
		tags = append(tags, "#"+strings.ReplaceAll(name, " ", "_"))
	}
	return strings.Join(tags, " ")
}

func (a *Assistant) sample(from []string, k int) []string {
	pool := append([]string(nil), from...)
	for i := 0; i < k; i++ {
		j := i + a.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Enrich fills the generated fields of a campaign about to be stored.
func (a *Assistant) Enrich(c *model.Campaign) {
	platform := ""
	if c.Platform != nil {
		platform = *c.Platform
	}
	suggestions := Suggestions(platform, c.TargetAmount)
	times := PostingTimes(platform)
	tags := a.Hashtags(c.CampaignName)

	c.AISuggestions = &suggestions
	c.BestPostingTimes = &times
	c.CampaignHashtags = &tags
}
