package telegram

import "testing"

func TestHumanSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 Б"},
		{512, "512 Б"},
		{1023, "1023 Б"},
		{1024, "1 КБ"},
		{1536, "1.5 КБ"},
		{1048576, "1 МБ"},
		{1073741824, "1 ГБ"},
		{5 << 40, "5120 ГБ"}, // no unit past ГБ
	}
	for _, tt := range tests {
		if got := HumanSize(tt.in); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
