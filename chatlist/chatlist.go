// Package chatlist holds the pure state transitions for the chat list.
// Every mutation the chat screen performs after a successful backend call
// lives here as a function from old list to new list, so the behaviour is
// testable without any view rendered.
package chatlist

import "astroai/models"

// List is the ordered chat list as shown in the sidebar.
type List []models.Chat

// Prepend puts a freshly created chat at the top of the list.
func Prepend(l List, chat models.Chat) List {
	out := make(List, 0, len(l)+1)
	out = append(out, chat)
	return append(out, l...)
}

// Remove drops the chat with the given id. Unknown ids are a no-op.
func Remove(l List, id int64) List {
	out := make(List, 0, len(l))
	for _, c := range l {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// Replace swaps the list entry matching updated.ID for the updated chat,
// keeping its position. Used after a rename, where the backend returns the
// full updated chat.
func Replace(l List, updated models.Chat) List {
	out := make(List, len(l))
	for i, c := range l {
		if c.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = c
		}
	}
	return out
}

// AppendMessages appends msgs to the chat with the given id, preserving
// prior message order.
func AppendMessages(l List, id int64, msgs []models.Message) List {
	out := make(List, len(l))
	for i, c := range l {
		if c.ID == id {
			combined := make([]models.Message, 0, len(c.Messages)+len(msgs))
			combined = append(combined, c.Messages...)
			combined = append(combined, msgs...)
			c.Messages = combined
		}
		out[i] = c
	}
	return out
}

// Find returns the chat with the given id.
func Find(l List, id int64) (models.Chat, bool) {
	for _, c := range l {
		if c.ID == id {
			return c, true
		}
	}
	return models.Chat{}, false
}

// Resolve picks the chat to show for a requested id: the requested chat
// when it exists, otherwise the first chat, otherwise none. A zero id
// means "no specific chat requested".
func Resolve(l List, requested int64) (int64, bool) {
	if requested != 0 {
		if _, ok := Find(l, requested); ok {
			return requested, true
		}
	}
	if len(l) > 0 {
		return l[0].ID, true
	}
	return 0, false
}

// NextActive picks the chat to show after deleting deleted while active
// was open. When a different chat was active it stays; when the active
// chat was deleted the first remaining chat is chosen; an empty remainder
// yields none. l is the list after removal.
func NextActive(l List, deleted, active int64) (int64, bool) {
	if active != deleted {
		if _, ok := Find(l, active); ok {
			return active, true
		}
	}
	if len(l) > 0 {
		return l[0].ID, true
	}
	return 0, false
}
