package server

// Server is the lifecycle of the process-level server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
