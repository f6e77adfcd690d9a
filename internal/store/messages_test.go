package store

import (
	"testing"

	"skillswap-be/internal/models"
)

func seedMessagingUsers(t *testing.T, s *Store) {
	t.Helper()
	mustCreateUser(t, s, "Alice", "a@x.com", "pw1")
	mustCreateUser(t, s, "Bob", "b@x.com", "pw2")
	mustCreateUser(t, s, "Cara", "c@x.com", "pw3")
}

func mustSend(t *testing.T, s *Store, from, to, content string) models.Message {
	t.Helper()
	msg, found, err := s.SendMessage(from, to, content)
	if err != nil || !found {
		t.Fatalf("send %s -> %s: found=%v err=%v", from, to, found, err)
	}
	return msg
}

func TestSendMessageRequiresBothUsers(t *testing.T) {
	s := newTestStore(t, Options{})
	mustCreateUser(t, s, "Alice", "a@x.com", "pw1")

	if _, found, err := s.SendMessage("a@x.com", "ghost@x.com", "hi"); err != nil || found {
		t.Fatalf("missing receiver: found=%v err=%v", found, err)
	}
	if _, found, err := s.SendMessage("ghost@x.com", "a@x.com", "hi"); err != nil || found {
		t.Fatalf("missing sender: found=%v err=%v", found, err)
	}

	msgs, err := s.ListUserMessages("a@x.com")
	if err != nil || len(msgs) != 0 {
		t.Fatalf("messages after failed sends = %d (err %v)", len(msgs), err)
	}
}

func TestSendMessageStartsUnread(t *testing.T) {
	s := newTestStore(t, Options{})
	seedMessagingUsers(t, s)

	msg := mustSend(t, s, "a@x.com", "b@x.com", "hello")
	if msg.IsRead {
		t.Fatal("new message created read")
	}
	if msg.CreatedAt.IsZero() {
		t.Fatal("no server timestamp")
	}
}

func TestInboxNewestFirstAndAnnotated(t *testing.T) {
	s := newTestStore(t, Options{})
	seedMessagingUsers(t, s)

	mustSend(t, s, "a@x.com", "b@x.com", "first")
	mustSend(t, s, "b@x.com", "a@x.com", "second")
	mustSend(t, s, "a@x.com", "c@x.com", "third")

	msgs, err := s.ListUserMessages("a@x.com")
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("inbox len = %d, want 3", len(msgs))
	}
	if msgs[0].Content != "third" || msgs[2].Content != "first" {
		t.Fatalf("not newest first: %q .. %q", msgs[0].Content, msgs[2].Content)
	}
	if msgs[2].SenderName != "Alice" || msgs[2].ReceiverName != "Bob" {
		t.Fatalf("annotation: %+v", msgs[2])
	}
	if msgs[2].Status != models.MessageUnread {
		t.Fatalf("status = %q, want unread", msgs[2].Status)
	}
}

func TestInboxUnknownPartyDefaults(t *testing.T) {
	s := newTestStore(t, Options{})
	seedMessagingUsers(t, s)
	mustSend(t, s, "b@x.com", "a@x.com", "hello")

	// Simulate the sender's account going away.
	if err := s.db.Where("email = ?", "b@x.com").Delete(&models.User{}).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	msgs, err := s.ListUserMessages("a@x.com")
	if err != nil || len(msgs) != 1 {
		t.Fatalf("inbox: len=%d err=%v", len(msgs), err)
	}
	if msgs[0].SenderName != "Unknown" || msgs[0].SenderEmail != "" {
		t.Fatalf("deleted sender shown as %q/%q", msgs[0].SenderName, msgs[0].SenderEmail)
	}
	if msgs[0].ReceiverName != "Alice" {
		t.Fatalf("receiver annotation lost: %+v", msgs[0])
	}
}

func TestConversationOrderingAndIsolation(t *testing.T) {
	s := newTestStore(t, Options{})
	seedMessagingUsers(t, s)

	mustSend(t, s, "a@x.com", "b@x.com", "one")
	mustSend(t, s, "b@x.com", "a@x.com", "two")
	mustSend(t, s, "a@x.com", "b@x.com", "three")
	mustSend(t, s, "a@x.com", "c@x.com", "foreign")

	conv, err := s.GetConversation("a@x.com", "b@x.com")
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}
	if len(conv) != 3 {
		t.Fatalf("conversation len = %d, want 3", len(conv))
	}
	for i, want := range []string{"one", "two", "three"} {
		if conv[i].Content != want {
			t.Fatalf("conv[%d] = %q, want %q", i, conv[i].Content, want)
		}
	}

	// Symmetric regardless of argument order.
	rev, err := s.GetConversation("b@x.com", "a@x.com")
	if err != nil || len(rev) != 3 {
		t.Fatalf("reversed conversation: len=%d err=%v", len(rev), err)
	}

	empty, err := s.GetConversation("a@x.com", "ghost@x.com")
	if err != nil || len(empty) != 0 {
		t.Fatalf("conversation with ghost: len=%d err=%v", len(empty), err)
	}
}

func TestMarkReadFlipsOnlyOneDirection(t *testing.T) {
	s := newTestStore(t, Options{})
	seedMessagingUsers(t, s)

	mustSend(t, s, "a@x.com", "b@x.com", "one")
	mustSend(t, s, "a@x.com", "b@x.com", "two")
	mustSend(t, s, "b@x.com", "a@x.com", "reply")
	mustSend(t, s, "c@x.com", "b@x.com", "other sender")

	before, err := s.UnreadCount("b@x.com")
	if err != nil || before != 3 {
		t.Fatalf("unread before = %d (err %v), want 3", before, err)
	}

	// b reads a's messages.
	updated, err := s.MarkMessagesRead("b@x.com", "a@x.com")
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if updated != 2 {
		t.Fatalf("updated = %d, want 2", updated)
	}

	after, err := s.UnreadCount("b@x.com")
	if err != nil || after != before-updated {
		t.Fatalf("unread after = %d (err %v), want %d", after, err, before-updated)
	}

	// a's own inbox direction is untouched.
	if count, err := s.UnreadCount("a@x.com"); err != nil || count != 1 {
		t.Fatalf("a unread = %d (err %v), want 1", count, err)
	}

	// Second pass finds nothing left to flip.
	if updated, err := s.MarkMessagesRead("b@x.com", "a@x.com"); err != nil || updated != 0 {
		t.Fatalf("repeat mark read = %d (err %v)", updated, err)
	}
}

func TestMarkReadUnknownUsers(t *testing.T) {
	s := newTestStore(t, Options{})
	seedMessagingUsers(t, s)
	mustSend(t, s, "a@x.com", "b@x.com", "one")

	if updated, err := s.MarkMessagesRead("ghost@x.com", "a@x.com"); err != nil || updated != 0 {
		t.Fatalf("ghost reader: updated=%d err=%v", updated, err)
	}
	if updated, err := s.MarkMessagesRead("b@x.com", "ghost@x.com"); err != nil || updated != 0 {
		t.Fatalf("ghost sender: updated=%d err=%v", updated, err)
	}
}
