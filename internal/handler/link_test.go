package handler

import "testing"

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare url", "http://v.example/1", "http://v.example/1", true},
		{"embedded", "check this http://v.example/1 out", "http://v.example/1", true},
		{"https", "смотри https://v.example/watch?v=1", "https://v.example/watch?v=1", true},
		{"first of two", "http://a.example/1 http://b.example/2", "http://a.example/1", true},
		{"other scheme", "ftp://files.example/x", "ftp://files.example/x", true},
		{"no url", "просто текст без ссылки", "", false},
		{"scheme without separator", "http//v.example/1", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractURL(tt.text)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ExtractURL(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestQualityRow(t *testing.T) {
	h := &Handler{}
	row := h.qualityRow()
	if len(row) != 3 {
		t.Fatalf("len = %d, want 3", len(row))
	}
	wantData := []string{"quality_medium", "quality_high", "quality_audio"}
	for i, btn := range row {
		if btn.CallbackData != wantData[i] {
			t.Errorf("button %d: callback = %q, want %q", i, btn.CallbackData, wantData[i])
		}
		if btn.Text == "" {
			t.Errorf("button %d has no label", i)
		}
	}
}
