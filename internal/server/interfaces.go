package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer serves requests and blocks until SIGTERM, SIGINT or SIGQUIT
	// is received and the server has shut down, or until it fails to serve.
	RunServer() error
}
