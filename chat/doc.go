// Package chat provides the game chat window as a Bubble Tea model.
//
// The window is split by a Layout into player info, a scrollable chat log,
// game info, and a message input with a send button. Only the focused area
// receives keys; the chat log always receives wheel and scrollbar drag
// events. Submitted messages are answered asynchronously by a Responder.
package chat
