// This file is part of Rdram64.
//
// Rdram64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rdram64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rdram64.  If not, see <https://www.gnu.org/licenses/>.

// Package stream sends trace events to websocket clients. Events are queued
// by the emulation and written to the clients by a separate goroutine. Events
// are dropped when the queue is full so that a slow client never holds up the
// emulation.
package stream

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/jetsetilly/rdram64/hardware/memory/bus"
	"github.com/jetsetilly/rdram64/logger"
)

// QueueLength is the number of events that can be waiting to be sent.
const QueueLength = 1024

// Server is an http.Handler that upgrades requests to websocket connections.
// It implements the bus.Tracer interface.
type Server struct {
	perm logger.Permission

	crit    sync.Mutex
	clients map[net.Conn]bool

	events  chan string
	dropped int
}

// NewServer is the preferred method of initialisation for the Server type.
// The server does nothing until Run() is called.
func NewServer(perm logger.Permission) *Server {
	return &Server{
		perm:    perm,
		clients: make(map[net.Conn]bool),
		events:  make(chan string, QueueLength),
	}
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		logger.Logf(srv.perm, "stream", "upgrade: %v", err)
		return
	}

	srv.crit.Lock()
	srv.clients[conn] = true
	srv.crit.Unlock()

	logger.Logf(srv.perm, "stream", "client connected: %s", conn.RemoteAddr())

	// clients do not send anything useful but the connection must be read
	// from in order to notice when it closes
	go func() {
		for {
			_, _, err := wsutil.ReadClientData(conn)
			if err != nil {
				srv.remove(conn)
				return
			}
		}
	}()
}

func (srv *Server) remove(conn net.Conn) {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.clients[conn] {
		delete(srv.clients, conn)
		conn.Close()
		logger.Logf(srv.perm, "stream", "client disconnected: %s", conn.RemoteAddr())
	}
}

// Clients returns the number of connected clients.
func (srv *Server) Clients() int {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	return len(srv.clients)
}

// Dropped returns the number of events that have been dropped because the
// queue was full. Must only be called from the emulation goroutine.
func (srv *Server) Dropped() int {
	return srv.dropped
}

// Run sends queued events to the connected clients until the context is
// cancelled. All clients are disconnected when Run returns.
func (srv *Server) Run(ctx context.Context) {
	defer func() {
		srv.crit.Lock()
		defer srv.crit.Unlock()
		for conn := range srv.clients {
			conn.Close()
			delete(srv.clients, conn)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-srv.events:
			srv.send([]byte(e))
		}
	}
}

func (srv *Server) send(msg []byte) {
	srv.crit.Lock()
	clients := make([]net.Conn, 0, len(srv.clients))
	for conn := range srv.clients {
		clients = append(clients, conn)
	}
	srv.crit.Unlock()

	for _, conn := range clients {
		err := wsutil.WriteServerText(conn, msg)
		if err != nil {
			srv.remove(conn)
		}
	}
}

func (srv *Server) queue(s string) {
	select {
	case srv.events <- s:
	default:
		srv.dropped++
	}
}

// TraceRegister implements the bus.Tracer interface.
func (srv *Server) TraceRegister(e bus.RegisterEvent) {
	srv.queue(e.String())
}

// TraceMemory implements the bus.Tracer interface.
func (srv *Server) TraceMemory(e bus.MemoryEvent) {
	srv.queue(e.String())
}
