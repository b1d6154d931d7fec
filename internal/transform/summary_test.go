package transform

import "testing"

func TestTruncateSummary(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{
			name: "trailing text dropped",
			text: "Sentence one. Sentence two. Sentence three.",
			max:  2,
			want: "Sentence one. Sentence two.",
		},
		{
			name: "fewer sentences than requested",
			text: "Only one sentence.",
			max:  2,
			want: "Only one sentence.",
		},
		{
			name: "newlines treated as spaces",
			text: "First part\ncontinues here. Second one.\nThird one.",
			max:  2,
			want: "First part continues here. Second one.",
		},
		{
			name: "blank fragments skipped",
			text: "One..  . Two. Three.",
			max:  2,
			want: "One. Two.",
		},
		{
			name: "sentinel passes through",
			text: NoSummary,
			max:  2,
			want: NoSummary,
		},
		{
			name: "empty passes through",
			text: "",
			max:  2,
			want: "",
		},
		{
			name: "single sentence budget",
			text: "Alpha. Beta. Gamma.",
			max:  1,
			want: "Alpha.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateSummary(tt.text, tt.max); got != tt.want {
				t.Errorf("TruncateSummary(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}
