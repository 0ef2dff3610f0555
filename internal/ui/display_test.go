package ui

import "testing"

func TestMarkdownWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{80, 76},
		{400, maxMarkdownWidth},
		{3, DefaultTermWidth},
	}
	for _, tt := range tests {
		if got := NewDisplayContextWithWidth(tt.width).MarkdownWidth(); got != tt.want {
			t.Fatalf("MarkdownWidth(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
