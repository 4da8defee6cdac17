package wordcloud

import "testing"

func TestAnalyze(t *testing.T) {
	captions := []string{
		"Sunset vibes at the beach #sunset #beach @friend",
		"Another sunset photo from the beach trip",
	}
	result := Analyze(captions, 10)

	if result.TotalPosts != 2 {
		t.Fatalf("期望 2 条文案, 实际得到 %d", result.TotalPosts)
	}

	freq := map[string]int{}
	for _, w := range result.Words {
		freq[w.Text] = w.Count
	}
	if freq["sunset"] != 2 || freq["beach"] != 2 {
		t.Errorf("期望 sunset/beach 各出现 2 次, 实际得到 %v", freq)
	}
	// 标签和提及不参与词频
	if _, ok := freq["friend"]; ok {
		t.Error("@ 提及不应计入词频")
	}
	// 停用词被过滤
	if _, ok := freq["the"]; ok {
		t.Error("停用词不应计入词频")
	}
}

func TestAnalyzeCJKBigrams(t *testing.T) {
	result := Analyze([]string{"今天天气"}, 10)

	freq := map[string]int{}
	for _, w := range result.Words {
		freq[w.Text] = w.Count
	}
	for _, want := range []string{"今天", "天天", "天气"} {
		if freq[want] != 1 {
			t.Errorf("期望二元组 %s 出现 1 次, 实际得到 %d", want, freq[want])
		}
	}
}

func TestAnalyzeLimit(t *testing.T) {
	result := Analyze([]string{"alpha beta gamma delta epsilon zeta"}, 3)
	if len(result.Words) != 3 {
		t.Errorf("期望截断到 3 个词, 实际得到 %d", len(result.Words))
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	result := Analyze(nil, 10)
	if result.TotalPosts != 0 || result.TotalWords != 0 || len(result.Words) != 0 {
		t.Errorf("空输入期望空结果, 实际得到 %+v", result)
	}
}
