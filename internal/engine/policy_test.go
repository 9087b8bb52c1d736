package engine

import (
	"math/rand"
	"strings"
	"testing"
)

func TestRespondEmptyMessage(t *testing.T) {
	e := testEngine()

	for _, msg := range []string{"", "   ", "\t\n"} {
		reply := e.Respond(msg, nil)
		if reply.Source != SourceEmpty {
			t.Errorf("Respond(%q) source = %s, want empty", msg, reply.Source)
		}
		if reply.Confidence != 0 {
			t.Errorf("Respond(%q) confidence = %v, want 0", msg, reply.Confidence)
		}
		if reply.Reply != EmptyMessageReply {
			t.Errorf("Respond(%q) reply = %q", msg, reply.Reply)
		}
	}
}

func TestRespondFaqMatch(t *testing.T) {
	e := testEngine()

	entries := []FaqEntry{
		{Question: "چطور سایز مناسب را انتخاب کنم؟", Answer: "X"},
	}

	reply := e.Respond("سایز مناسب چیه؟", entries)
	if reply.Source != SourceFAQ {
		t.Fatalf("source = %s, want faq (reply %q)", reply.Source, reply.Reply)
	}
	if reply.Reply != "X" {
		t.Errorf("reply = %q, want X", reply.Reply)
	}
	if reply.Confidence < MatchThreshold || reply.Confidence > 1 {
		t.Errorf("confidence = %v, want within [%v, 1]", reply.Confidence, MatchThreshold)
	}
}

func TestRespondInsult(t *testing.T) {
	e := testEngine()

	reply := e.Respond("تو خیلی احمق هستی", nil)
	if reply.Source != SourceContext {
		t.Fatalf("source = %s, want context", reply.Source)
	}
	if reply.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", reply.Confidence)
	}
	if reply.Reply != insultReply {
		t.Errorf("reply = %q, want the polite refusal", reply.Reply)
	}
}

func TestRespondInsultBeatsOtherCategories(t *testing.T) {
	e := testEngine()

	// احمق also fires the size category through the م substring; the
	// insult branch must still win.
	reply := e.Respond("سایز بده احمق", nil)
	if reply.Reply != insultReply {
		t.Errorf("reply = %q, want the polite refusal", reply.Reply)
	}
}

func TestRespondHumanRequest(t *testing.T) {
	e := testEngine()

	reply := e.Respond("میخوام با اپراتور انسانی صحبت کنم", nil)
	if reply.Source != SourceContext {
		t.Fatalf("source = %s, want context", reply.Source)
	}
	if reply.Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", reply.Confidence)
	}
	if !strings.Contains(reply.Reply, DefaultInstagramHandle) {
		t.Errorf("hand-off reply %q does not mention the contact handle", reply.Reply)
	}
}

func TestRespondCategoryBranches(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		// Probe messages avoid the م and ال substrings so earlier
		// branches (size) stay quiet.
		{"size", "سایز بده", sizeReply},
		{"delivery", "تحویل پست", shippingReply},
		{"tracking", "رهگیری سفارش", shippingReply},
		{"return", "عودت وجه", returnReply},
		{"quality", "جنس پارچه خوبه", qualityReply},
		{"price", "هزینه چنده", priceReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := e.Respond(tt.message, nil)
			if reply.Source != SourceContext || reply.Confidence != 0.7 {
				t.Fatalf("got source %s confidence %v", reply.Source, reply.Confidence)
			}
			if reply.Reply != tt.want {
				t.Errorf("reply = %q, want %q", reply.Reply, tt.want)
			}
		})
	}
}

func TestRespondInterrogatives(t *testing.T) {
	e := testEngine()

	if reply := e.Respond("چطور سفارش", nil); reply.Reply != howReply {
		t.Errorf("چطور reply = %q, want the clarification request", reply.Reply)
	}
	if reply := e.Respond("آیا جنس خوبه", nil); reply.Reply == yesNoReply {
		t.Error("quality category should fire before the آیا opener")
	}
	if reply := e.Respond("آیا هست درود", nil); reply.Reply != yesNoReply {
		t.Errorf("آیا reply = %q, want the affirmative-clarify text", reply.Reply)
	}
}

func TestRespondUnclearShortMessage(t *testing.T) {
	e := testEngine()

	reply := e.Respond("اه", nil)
	if reply.Source != SourceUnclear {
		t.Fatalf("source = %s, want unclear (reply %q)", reply.Source, reply.Reply)
	}
	if reply.Confidence != 0.3 {
		t.Errorf("confidence = %v, want 0.3", reply.Confidence)
	}
}

func TestRespondDefaultFallback(t *testing.T) {
	e := testEngine()

	reply := e.Respond("درود بر تو", nil)
	if reply.Source != SourceDefault {
		t.Fatalf("source = %s, want default (reply %q)", reply.Source, reply.Reply)
	}
	if reply.Confidence != 0.4 {
		t.Errorf("confidence = %v, want 0.4", reply.Confidence)
	}

	foundBase := false
	for _, base := range defaultReplies {
		if strings.HasPrefix(reply.Reply, base) {
			foundBase = true
		}
	}
	if !foundBase {
		t.Errorf("default reply %q has no known base text", reply.Reply)
	}
	foundSuffix := false
	for _, s := range suggestions {
		if strings.HasSuffix(reply.Reply, s) {
			foundSuffix = true
		}
	}
	if !foundSuffix {
		t.Errorf("default reply %q has no known suggestion suffix", reply.Reply)
	}
}

func TestRespondDefaultDeterministicWithSeed(t *testing.T) {
	a := NewWithSource(rand.NewSource(42))
	b := NewWithSource(rand.NewSource(42))

	ra := a.Respond("درود بر تو", nil)
	rb := b.Respond("درود بر تو", nil)
	if ra.Reply != rb.Reply {
		t.Errorf("same seed produced different replies:\n%q\n%q", ra.Reply, rb.Reply)
	}
}

func TestRespondConfidenceBounds(t *testing.T) {
	e := testEngine()

	messages := []string{"", "اه", "سایز بده", "درود بر تو", "تو خیلی احمق هستی"}
	for _, msg := range messages {
		reply := e.Respond(msg, nil)
		if reply.Confidence < 0 || reply.Confidence > 1 {
			t.Errorf("Respond(%q) confidence %v outside [0,1]", msg, reply.Confidence)
		}
	}
}
