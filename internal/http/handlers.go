package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pokernight/awards-board/internal/pubsub"
)

// maxUploadBytes caps a single log upload. A full night of hands is well
// under a megabyte; anything bigger is not a hand history.
const maxUploadBytes = 10 << 20

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// UploadHandler accepts a tournament log (multipart "file" field or raw
// body), runs it through the processor and nudges connected board clients.
func (s *Server) UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("secret") != s.Cfg.UploadSecret {
			http.NotFound(w, r)
			return
		}

		uploadID := uuid.NewString()
		s.Metrics.IncUploadsReceived()

		transcript, err := readTranscript(r)
		if err != nil {
			log.Error("Failed to read uploaded log", "error", err, "uploadID", uploadID)
			http.Error(w, "Failed to read uploaded log", http.StatusBadRequest)
			return
		}
		if len(transcript) == 0 {
			http.Error(w, "Empty upload", http.StatusBadRequest)
			return
		}

		isDryRun := isDryRunFromContext(r)
		log.Info("Received tournament log upload", "uploadID", uploadID, "bytes", len(transcript), "dry_run", isDryRun)

		summary, err := s.Processor.ProcessTranscript(transcript, isDryRun)
		if err != nil {
			log.Error("Failed to process uploaded log", "error", err, "uploadID", uploadID)
			http.Error(w, "Failed to process uploaded log", http.StatusInternalServerError)
			return
		}

		if !isDryRun {
			s.broadcaster.Broadcast("update")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			log.Error("Failed to encode summary to JSON", "error", err, "uploadID", uploadID)
		}
	}
}

// readTranscript pulls the log text out of the request, preferring a
// multipart "file" field and falling back to the raw body.
func readTranscript(r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BoardHandler serves the latest tournament summary, the payload behind the
// public board.
func (s *Server) BoardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := s.Store.GetLatest()
		if err != nil {
			http.Error(w, "Failed to get latest tournament", http.StatusInternalServerError)
			log.Error("Failed to get latest tournament from store", "error", err)
			return
		}
		if latest == nil {
			http.Error(w, "No tournaments uploaded yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(latest); err != nil {
			log.Error("Failed to encode summary to JSON", "error", err)
		}
	}
}

// ListTournamentsHandler serves every stored summary, or a single one when
// the id query parameter is set.
func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id := r.URL.Query().Get("id"); id != "" {
			summary, err := s.Store.GetSummary(id)
			if err != nil {
				http.Error(w, "Failed to get tournament", http.StatusInternalServerError)
				log.Error("Failed to get tournament from store", "error", err, "tournamentID", id)
				return
			}
			if summary == nil {
				http.Error(w, "Unknown tournament", http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(summary); err != nil {
				log.Error("Failed to encode summary to JSON", "error", err)
			}
			return
		}

		summaries, err := s.Store.ListSummaries()
		if err != nil {
			http.Error(w, "Failed to list tournaments", http.StatusInternalServerError)
			log.Error("Failed to list tournaments from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			log.Error("Failed to encode summaries to JSON", "error", err)
		}
	}
}

// EventsHandler streams board refresh events over SSE. Clients reload the
// board whenever an event arrives.
func (s *Server) EventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		events, unsubscribe := s.broadcaster.Subscribe()
		defer unsubscribe()

		// Opening event carries the current board so a fresh client does
		// not need a second request.
		board := "null"
		if latest, err := s.Store.GetLatest(); err == nil && latest != nil {
			if data, err := json.Marshal(latest); err == nil {
				board = string(data)
			}
		}
		fmt.Fprintf(w, "event: init\ndata: %s\n\n", board)
		flusher.Flush()
		log.Debug("Board client connected", "subscribers", s.broadcaster.Subscribers())

		for {
			select {
			case <-r.Context().Done():
				return
			case event := <-events:
				fmt.Fprintf(w, "event: %s\ndata: refresh\n\n", event)
				flusher.Flush()
			}
		}
	}
}

// TournamentParsedPushHandler receives pubsub push deliveries for the
// tournament-parsed topic and refreshes connected board clients. This is
// how an instance hears about uploads handled by a sibling instance.
func (s *Server) TournamentParsedPushHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received tournament-parsed message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		event := pubsub.TournamentParsedEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		log.Info("Tournament parsed elsewhere, refreshing board clients", "tournamentID", event.TournamentID)
		s.broadcaster.Broadcast("update")
		w.Write([]byte("OK"))
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournamentID")
		if isDryRunFromContext(r) {
			log.Info("Dry run, leaving store untouched", "tournamentID", tournamentID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Dry run, store untouched")
			return
		}
		if tournamentID != "" {
			log.Info("Received request to clear a specific tournament", "tournamentID", tournamentID)
			s.Store.ClearTournament(tournamentID)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared tournament %s from store!", tournamentID)
			log.Info("Successfully cleared tournament from store", "tournamentID", tournamentID)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
		if err := s.pubsub.SendMessage(pubsub.EventBoardCleared, pubsub.BoardClearedEvent{TournamentID: tournamentID}); err != nil {
			log.Error("Failed to publish board-cleared event", "error", err)
		}
		s.broadcaster.Broadcast("update")
	}
}
