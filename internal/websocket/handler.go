package websocket

// ServeWs registers the connection and blocks in the read pump until the
// peer goes away.
func ServeWs(hub *Hub, conn Conn, sessionKey string) {
	client := NewClient(hub, conn, sessionKey)
	if !hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
