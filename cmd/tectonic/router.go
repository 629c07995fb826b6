package main

import "net/http"

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/register", handleRegister)
	mux.HandleFunc("POST /v1/login", handleLogin)
	mux.HandleFunc("POST /v1/logout", handleLogout)

	mux.HandleFunc("GET /v1/status", handleStatus)
	mux.HandleFunc("GET /v1/sessions", handleGetSessions)

	mux.HandleFunc("POST /v1/session", handleNewSession)
	mux.HandleFunc("GET /v1/session/{id}", handleGetSession)
	mux.HandleFunc("DELETE /v1/session/{id}", handleDeleteSession)
	mux.HandleFunc("POST /v1/session/{id}/cell", handleClickCell)
	mux.HandleFunc("POST /v1/session/{id}/wall", handleToggleWall)
	mux.HandleFunc("POST /v1/session/{id}/lock", handleToggleLock)
	mux.HandleFunc("POST /v1/session/{id}/undo", handleUndo)
	mux.HandleFunc("POST /v1/session/{id}/resize", handleResize)
	mux.HandleFunc("POST /v1/session/{id}/reset", handleReset)
	mux.HandleFunc("POST /v1/session/{id}/stop", handleStop)
	mux.HandleFunc("POST /v1/session/{id}/batch", handleBatch)

	mux.HandleFunc("/v1/session/{id}/connect", handleConnectWs)

	handler := useMiddleware(mux,
		corsMiddleware,
		authMiddleware,
		loggingMiddleware,
	)

	return handler
}
