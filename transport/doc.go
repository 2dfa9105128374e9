// Package transport serves a router.Router over net/http.
//
// Each request is converted with NewRequest: the port is dropped from the
// Host header, the protocol is "https" for TLS connections and the Origin
// header is carried for CORS. Directives are executed as they arrive. A
// status set without any body directive is written with an empty body.
//
// The path handed to the router stays escaped, as the client sent it.
//
//	rt := router.New(config.NewFileLoader("server.json"))
//	rt.Get("home", home, "example.com")
//	err := transport.NewServer(rt, *config.DefaultSettings()).Run(ctx)
package transport
