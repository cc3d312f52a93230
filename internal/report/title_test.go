package report

import (
	"regexp"
	"testing"
	"time"

	"reportgen-ai/internal/template"
)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func TestDecideTitle_UserTitleWins(t *testing.T) {
	got := DecideTitle("Foo", "# Bar", template.ClosureReport, fixedNow)
	if got != "Foo" {
		t.Errorf("DecideTitle() = %q, want %q", got, "Foo")
	}
}

func TestDecideTitle_UserTitleSanitized(t *testing.T) {
	got := DecideTitle("  排程/系統  ", "", template.ClosureReport, fixedNow)
	if got != "排程_系統" {
		t.Errorf("DecideTitle() = %q, want %q", got, "排程_系統")
	}
}

func TestDecideTitle_ExtractionOrder(t *testing.T) {
	tests := []struct {
		name      string
		generated string
		want      string
	}{
		{
			name:      "numbered heading with bullet",
			generated: "一、專案名稱\n- 智慧排程系統\n一、專案目標",
			want:      "智慧排程系統",
		},
		{
			name:      "numbered heading plain line",
			generated: "一、專案名稱\n智慧排程系統\n二、專案目標",
			want:      "智慧排程系統",
		},
		{
			name:      "numbered heading strips trailing remark",
			generated: "一、專案名稱\n智慧排程系統（暫名）\n",
			want:      "智慧排程系統",
		},
		{
			name:      "colon form full-width",
			generated: "專案名稱：智慧排程系統\n其他內容",
			want:      "智慧排程系統",
		},
		{
			name:      "colon form ascii",
			generated: "專案名稱: Atlas\n",
			want:      "Atlas",
		},
		{
			name:      "markdown h1",
			generated: "前言\n# Project Atlas\n內容",
			want:      "Project Atlas",
		},
		{
			name:      "numbered beats colon and h1",
			generated: "# 別的標題\n專案名稱：另一個\n一、專案名稱\n正確答案\n",
			want:      "正確答案",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideTitle("", tt.generated, template.ClosureReport, fixedNow)
			if got != tt.want {
				t.Errorf("DecideTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecideTitle_TimestampFallback(t *testing.T) {
	got := DecideTitle("", "no headings here", template.ClosureReport, fixedNow)
	if got != "結案報告_20260314_150926" {
		t.Errorf("DecideTitle() = %q", got)
	}

	got = DecideTitle("", "", template.RequirementDoc, fixedNow)
	pattern := regexp.MustCompile(`^需求文件_\d{8}_\d{6}$`)
	if !pattern.MatchString(got) {
		t.Errorf("DecideTitle() = %q, want kind_timestamp form", got)
	}
}

func TestNumberedTitle_Miss(t *testing.T) {
	if _, ok := NumberedTitle("# 只有 Markdown 標題"); ok {
		t.Error("NumberedTitle() matched text without the numbered heading")
	}
}
