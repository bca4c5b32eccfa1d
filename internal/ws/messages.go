package ws

import "github.com/abbykyun/daa-visual/playback"

// Client message types.
const (
	MsgPlay   = "play"
	MsgPause  = "pause"
	MsgStep   = "step"
	MsgRewind = "rewind"
	MsgReset  = "reset"
)

// Server frame types.
const (
	FrameView  = "frame"
	FrameError = "error"
)

// Message is a client command.
type Message struct {
	Type string `json:"type"`
}

// Frame is a server message: a playback view or an error.
type Frame struct {
	Type    string         `json:"type"`
	View    *playback.View `json:"view,omitempty"`
	Message string         `json:"message,omitempty"`
}

func viewFrame(v playback.View) Frame { return Frame{Type: FrameView, View: &v} }

func errorFrame(msg string) Frame { return Frame{Type: FrameError, Message: msg} }
