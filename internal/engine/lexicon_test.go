package engine

import "testing"

func TestClassifyCategories(t *testing.T) {
	e := testEngine()

	matches := e.Classify("قیمت این جنس چنده؟")
	if _, ok := matches[CategoryPrice]; !ok {
		t.Errorf("expected price category, got %v", matches)
	}
	if _, ok := matches[CategoryQuality]; !ok {
		t.Errorf("expected quality category (trigger جنس), got %v", matches)
	}
}

func TestClassifySubstringMatching(t *testing.T) {
	e := testEngine()

	// The single-letter trigger م fires on substring containment inside
	// larger words. That is intentional behavior, not a bug.
	matches := e.Classify("ممنون")
	if _, ok := matches[CategorySize]; !ok {
		t.Errorf("expected size category via substring م, got %v", matches)
	}
}

func TestClassifyOmitsEmptyCategories(t *testing.T) {
	e := testEngine()

	matches := e.Classify("درود بر تو")
	if len(matches) != 0 {
		t.Errorf("expected no categories, got %v", matches)
	}
}

func TestClassifyTriggerOrder(t *testing.T) {
	e := testEngine()

	matches := e.Classify("زمان ارسال و تحویل پست")
	got := matches[CategoryDelivery]
	want := []string{"زمان ارسال", "ارسال", "تحویل", "پست"}
	if len(got) != len(want) {
		t.Fatalf("delivery triggers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trigger %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCheckHumanRequest(t *testing.T) {
	e := testEngine()

	tests := []struct {
		text string
		want bool
	}{
		{"میخوام با اپراتور انسانی صحبت کنم", true},
		{"صحبت با انسان", true},
		{"آدم واقعی هست؟", true},
		{"قیمت این محصول چنده", false},
	}

	for _, tt := range tests {
		if got := e.CheckHumanRequest(tt.text); got != tt.want {
			t.Errorf("CheckHumanRequest(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestCheckInsult(t *testing.T) {
	e := testEngine()

	if !e.CheckInsult("تو خیلی احمق هستی") {
		t.Error("expected insult detection")
	}
	if e.CheckInsult("سلام و درود") {
		t.Error("unexpected insult detection")
	}
}
