// Package ws streams playback of the current run over a WebSocket. Each
// connection owns its own Player.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abbykyun/daa-visual/internal/metrics"
	"github.com/abbykyun/daa-visual/playback"
	"github.com/abbykyun/daa-visual/trace"
)

const (
	writeTimeout     = 10 * time.Second
	wsReadLimit      = 4096
	clientSendBuffer = 64
)

// errPeerClosed ends the read loop on a clean close from the client.
var errPeerClosed = errors.New("ws: peer closed")

// Client wraps one playback connection.
type Client struct {
	conn   *websocket.Conn
	player *playback.Player
	send   chan Frame
	log    *logrus.Entry
}

// Serve drives playback of run over conn until the peer closes or ctx ends.
// A nil run gets one error frame and a normal close.
func Serve(ctx context.Context, conn *websocket.Conn, run *trace.Run, interval time.Duration, log *logrus.Logger) error {
	metrics.WSConnections.Inc()
	defer metrics.WSConnections.Dec()
	defer conn.CloseNow() //nolint:errcheck // best-effort close on teardown

	entry := log.WithField("component", "ws")

	player, err := playback.NewPlayer(run, playback.WithInterval(interval))
	if err != nil {
		if werr := writeFrame(ctx, conn, errorFrame(err.Error())); werr != nil {
			entry.WithError(werr).Debug("write failed")
		}
		conn.Close(websocket.StatusNormalClosure, "no run") //nolint:errcheck // best-effort

		return nil
	}

	c := &Client{
		conn:   conn,
		player: player,
		send:   make(chan Frame, clientSendBuffer),
		log:    entry.WithField("algorithm", run.Algorithm),
	}
	c.log.Debug("playback connected")

	return c.run(ctx)
}

func (c *Client) run(ctx context.Context) error {
	defer c.player.Pause()

	g, gctx := errgroup.WithContext(ctx)
	c.enqueue(gctx, viewFrame(c.player.Current()))
	g.Go(func() error { return c.readPump(gctx, g) })
	g.Go(func() error { return c.writePump(gctx) })

	err := g.Wait()
	if errors.Is(err, errPeerClosed) || errors.Is(err, context.Canceled) {
		c.log.Debug("playback disconnected")
		return nil
	}

	return err
}

// readPump decodes commands until the connection closes. Play loops are
// started on g so Wait covers them.
func (c *Client) readPump(ctx context.Context, g *errgroup.Group) error {
	c.conn.SetReadLimit(wsReadLimit)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				return errPeerClosed
			}
			return err
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.enqueue(ctx, errorFrame("malformed message"))
			continue
		}
		c.handle(ctx, g, msg)
	}
}

func (c *Client) handle(ctx context.Context, g *errgroup.Group, msg Message) {
	switch msg.Type {
	case MsgPlay:
		g.Go(func() error { return c.play(ctx) })
	case MsgPause:
		c.player.Pause()
		c.enqueue(ctx, viewFrame(c.player.Current()))
	case MsgStep:
		v, _, err := c.player.Step()
		if err != nil {
			c.enqueue(ctx, errorFrame(err.Error()))
			return
		}
		c.enqueue(ctx, viewFrame(v))
	case MsgRewind:
		c.enqueue(ctx, viewFrame(c.player.Rewind()))
	case MsgReset:
		c.enqueue(ctx, viewFrame(c.player.Reset()))
	default:
		c.enqueue(ctx, errorFrame("unknown message type "+msg.Type))
	}
}

// play runs one Play loop. ErrAlreadyPlaying and ErrNoRun go to the client
// as error frames and never end the connection.
func (c *Client) play(ctx context.Context) error {
	err := c.player.Play(ctx, func(v playback.View) { c.enqueue(ctx, viewFrame(v)) })
	switch {
	case err == nil, errors.Is(err, context.Canceled):
	default:
		c.enqueue(ctx, errorFrame(err.Error()))
	}

	return nil
}

func (c *Client) writePump(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-c.send:
			if err := writeFrame(ctx, c.conn, f); err != nil {
				c.log.WithError(err).Debug("write failed")
				return err
			}
		}
	}
}

// enqueue blocks until the frame is queued or ctx ends, so no view is dropped.
func (c *Client) enqueue(ctx context.Context, f Frame) {
	select {
	case c.send <- f:
	case <-ctx.Done():
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return conn.Write(writeCtx, websocket.MessageText, data)
}
