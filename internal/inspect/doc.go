// Package inspect streams dialog lifecycle transitions to external tools.
//
// A Hub is a dialog.Observer: register it on every controller and each
// transition is fanned out as JSON to the websocket clients connected to
// the Server's /events endpoint. Broadcasting never blocks the UI
// goroutine; a client whose queue is full is disconnected.
//
// The inspector can be announced on the local network with Advertise and
// found with Browse, both over mDNS (service type "_micromodal._tcp").
// Watch is the client side used by "micromodal inspect watch".
//
// # Wire Format
//
// Every websocket text frame holds one Message:
//
//	{"kind":"hello","version":"v0.3.0","depth":0,"at":"..."}
//	{"kind":"transition","dialog_id":"...","name":"basic","from":"closed","to":"open","depth":1,"at":"..."}
package inspect
