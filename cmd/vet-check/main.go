package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	defaultURL := os.Getenv("GATEKEEPER_API_URL")
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:8000"
	}

	var (
		baseURL = flag.String("url", defaultURL, "gatekeeper base URL")
		kind    = flag.String("kind", "message", "vet kind: join or message")
		name    = flag.String("name", "Test User", "applicant name (join)")
		note    = flag.String("note", "Hello, I would like to join", "applicant note (join)")
		author  = flag.String("author", "123", "message author (message)")
		body    = flag.String("body", "hello", "message body (message)")
	)
	flag.Parse()

	var path string
	var payload map[string]string

	switch *kind {
	case "join":
		path = "/vet_join"
		payload = map[string]string{"name": *name, "note": *note}
	case "message":
		path = "/vet_message"
		payload = map[string]string{"author": *author, "body": *body}
	default:
		fmt.Printf("Unknown kind %q, want join or message\n", *kind)
		os.Exit(1)
	}

	data, _ := json.Marshal(payload)
	fmt.Printf("POST %s%s\n%s\n\n", *baseURL, path, data)

	resp, err := http.Post(*baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, strings.TrimSpace(string(respBody)))
}
