package wordcloud

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordCloudResult 文案词云结果
type WordCloudResult struct {
	TotalPosts int         `json:"total_posts"`
	TotalWords int         `json:"total_words"`
	Words      []*WordItem `json:"words"`
}

// WordItem 词频项
type WordItem struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// 英文停用词表。帖子文案以英文为主，中文按二元组统计不做停用词过滤。
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "you": true, "your": true,
	"with": true, "this": true, "that": true, "are": true, "was": true,
	"our": true, "have": true, "has": true, "from": true, "not": true,
	"all": true, "can": true, "will": true, "just": true, "out": true,
	"about": true, "what": true, "when": true, "how": true, "more": true,
	"new": true, "now": true, "get": true, "like": true, "its": true,
}

// 话题标签和 @ 提及在分词前剔除，它们由标签分析单独统计
var markerRe = regexp.MustCompile(`[#@][\p{L}\p{N}_]+`)

// Analyze 对帖子文案做词频统计，返回词云结果
func Analyze(captions []string, limit int) *WordCloudResult {
	if limit <= 0 {
		limit = 100
	}

	freq := make(map[string]int)
	totalWords := 0

	for _, caption := range captions {
		words := tokenize(markerRe.ReplaceAllString(caption, " "))
		for _, w := range words {
			if !stopWords[w] {
				freq[w]++
				totalWords++
			}
		}
	}

	// 转为切片并排序，词频并列时按字典序保证稳定
	items := make([]*WordItem, 0, len(freq))
	for text, count := range freq {
		items = append(items, &WordItem{Text: text, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Text < items[j].Text
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return &WordCloudResult{
		TotalPosts: len(captions),
		TotalWords: totalWords,
		Words:      items,
	}
}

// tokenize 对文案进行简单分词。
// 拉丁文字按单词切分，中日韩文字用二元组（bigram）方式提取。
func tokenize(text string) []string {
	var words []string
	var cjkRunes []rune
	var latinWord strings.Builder

	flushLatin := func() {
		if latinWord.Len() > 0 {
			w := strings.ToLower(latinWord.String())
			if utf8.RuneCountInString(w) >= 3 {
				words = append(words, w)
			}
			latinWord.Reset()
		}
	}

	for _, r := range text {
		if isCJK(r) {
			flushLatin()
			cjkRunes = append(cjkRunes, r)
		} else {
			words = append(words, extractBigrams(cjkRunes)...)
			cjkRunes = cjkRunes[:0]

			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				latinWord.WriteRune(r)
			} else {
				flushLatin()
			}
		}
	}

	words = append(words, extractBigrams(cjkRunes)...)
	flushLatin()

	return words
}

// extractBigrams 从中日韩字符序列中提取二元组
func extractBigrams(runes []rune) []string {
	if len(runes) < 2 {
		return nil
	}
	var bigrams []string
	for i := 0; i < len(runes)-1; i++ {
		bigrams = append(bigrams, string(runes[i:i+2]))
	}
	return bigrams
}

// isCJK 判断是否为中日韩统一表意文字
func isCJK(r rune) bool {
	return unicode.Is(unicode.Han, r)
}
