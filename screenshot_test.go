package bramble

import "testing"

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"hello world", "hello_world"},
		{"a/b\\c", "a_b_c"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"v1.2-final", "v1.2-final"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		128, 0, 64, 128, // half-transparent
		10, 20, 30, 255, // opaque
		0, 0, 0, 0, // clear
	}, 3, 1)

	want := []byte{255, 0, 127, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], b)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	var s screenshots
	s.request("a")
	s.request("b")
	if len(s.queue) != 2 || s.queue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", s.queue)
	}
}
