package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halaqat_backend/internals/features/donations/fundraising/model"
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		target   int64
		lines    int
		first    string
		tierLine string
	}{
		{"twitter small", "تويتر", 1000, 13, "استخدم خيوط تويتر (threads) لشرح تفاصيل الحملة", "ابدأ بالأصدقاء والعائلة"},
		{"whatsapp medium", "واتساب", 5000, 13, "أنشئ رسائل شخصية ودافئة", "استهدف المجتمع المحلي"},
		{"unknown large", "تلغرام", 20000, 8, "استهدف الشركات والمؤسسات", "استهدف الشركات والمؤسسات"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(Suggestions(tt.platform, decimal.NewFromInt(tt.target)), "\n")
			require.Len(t, lines, tt.lines)
			assert.Equal(t, tt.first, lines[0])
			assert.Contains(t, lines, tt.tierLine)
			assert.Equal(t, "كن شفافاً في التقارير المالية", lines[len(lines)-1])
		})
	}
}

func TestPostingTimes(t *testing.T) {
	assert.Equal(t, "الثلاثاء-الخميس: 1-3 ظهراً | الأحد: 12-1 ظهراً", PostingTimes("فيسبوك"))
	assert.Equal(t, defaultPostingTimes, PostingTimes(""))
}

func TestHashtagsDeterministic(t *testing.T) {
	a := NewAssistant(rand.NewSource(42)).Hashtags("حملة رمضان")
	b := NewAssistant(rand.NewSource(42)).Hashtags("حملة رمضان")
	assert.Equal(t, a, b)
}

func TestHashtagsShape(t *testing.T) {
	as := NewAssistant(rand.NewSource(7))

	tags := strings.Fields(as.Hashtags("حملة رمضان"))
	require.Len(t, tags, 8)
	assert.Subset(t, generalTags, tags[0:3])
	assert.Subset(t, religiousTags, tags[3:5])
	assert.Subset(t, localTags, tags[5:7])
	assert.Equal(t, "#حملة_رمضان", tags[7])

	seen := map[string]bool{}
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate %s", tag)
		seen[tag] = true
	}

	assert.Len(t, strings.Fields(as.Hashtags("  ")), 7)
}

func TestEnrich(t *testing.T) {
	platform := "انستجرام"
	c := &model.Campaign{CampaignName: "كفالة", Platform: &platform, TargetAmount: decimal.NewFromInt(30000)}
	NewAssistant(rand.NewSource(1)).Enrich(c)

	require.NotNil(t, c.AISuggestions)
	assert.True(t, strings.HasPrefix(*c.AISuggestions, "استخدم القصص التفاعلية مع الاستطلاعات"))
	assert.Equal(t, PostingTimes(platform), *c.BestPostingTimes)
	assert.True(t, strings.HasSuffix(*c.CampaignHashtags, "#كفالة"))
}
