package store

import "testing"

func TestKeyLayout(t *testing.T) {
	// The layout is shared with the previous generation of the service;
	// these literals are load-bearing.
	if ArchivedSetKey != "archived_numbers" {
		t.Errorf("archived set key = %q", ArchivedSetKey)
	}
	if got := processedKey("+15551234567"); got != "processed:+15551234567" {
		t.Errorf("processed key = %q", got)
	}
	if got := ConversationKey("+15551234567"); got != "conv:+15551234567" {
		t.Errorf("conversation key = %q", got)
	}
	if got := NumberFromConversationKey("conv:+15551234567"); got != "+15551234567" {
		t.Errorf("number from key = %q", got)
	}
}
