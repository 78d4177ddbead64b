package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"vanquish/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

func main() {
	global := flag.NewFlagSet("vanquish", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "auth":
		handleAuth(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "characters":
		handleCharacters(ctx, client, *baseURL, sub, args[2:])
	case "comics":
		handleComics(ctx, client, *baseURL, sub, args[2:])
	case "compare":
		handleCompare(ctx, client, *baseURL, args[1:])
	case "favorites":
		handleFavorites(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "history":
		handleHistory(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "watch":
		handleWatch(*baseURL, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := map[string]string{"email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/login", "", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ logged in")
	case "register":
		fs := flag.NewFlagSet("auth register", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		name := fs.String("name", "", "display name")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := map[string]string{"email": *email, "display_name": *name, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/register", "", payload, &resp); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ registered and logged in")
	case "logout":
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println("✅ logged out")
	default:
		log.Fatal("usage: vanquish auth <login|register|logout>")
	}
}

func handleCharacters(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list", "search":
		fs := flag.NewFlagSet("characters "+sub, flag.ExitOnError)
		query := fs.String("q", "", "search query")
		sortBy := fs.String("sort", "name", "sort key (name|power|intelligence|publisher|alignment)")
		dir := fs.String("dir", "asc", "sort direction (asc|desc)")
		limit := fs.Int("limit", 0, "max records (0 = all)")
		offset := fs.Int("offset", 0, "offset")
		_ = fs.Parse(args)

		path := "/api/characters"
		if sub == "search" {
			if *query == "" {
				log.Fatal("search query (-q) is required")
			}
			path = "/api/characters/search"
		}

		u, err := url.Parse(baseURL + path)
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		if *query != "" {
			qv.Set("query", *query)
		}
		qv.Set("sortBy", *sortBy)
		qv.Set("sortDirection", *dir)
		if *limit > 0 {
			qv.Set("limit", fmt.Sprintf("%d", *limit))
		}
		qv.Set("offset", fmt.Sprintf("%d", *offset))
		u.RawQuery = qv.Encode()

		var resp []models.Character
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("%s failed: %v", sub, err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("characters show", flag.ExitOnError)
		id := fs.String("id", "", "character id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("character id is required")
		}

		var resp models.Character
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/characters/"+url.PathEscape(*id), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: vanquish characters <list|search|show>")
	}
}

func handleComics(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("comics list", flag.ExitOnError)
		publisher := fs.String("publisher", "", "publisher filter")
		limit := fs.Int("limit", 12, "max records")
		offset := fs.Int("offset", 0, "offset")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/api/comics")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		if *publisher != "" {
			qv.Set("publisher", *publisher)
		}
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		qv.Set("offset", fmt.Sprintf("%d", *offset))
		u.RawQuery = qv.Encode()

		var resp []models.Comic
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "search":
		fs := flag.NewFlagSet("comics search", flag.ExitOnError)
		query := fs.String("q", "", "search query")
		limit := fs.Int("limit", 12, "max records")
		_ = fs.Parse(args)
		if *query == "" {
			log.Fatal("search query (-q) is required")
		}

		u, err := url.Parse(baseURL + "/api/comics/search")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		qv.Set("query", *query)
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		u.RawQuery = qv.Encode()

		var resp []models.Comic
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("search failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("comics show", flag.ExitOnError)
		id := fs.String("id", "", "comic id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("comic id is required")
		}

		var resp models.Comic
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/api/comics/"+url.PathEscape(*id), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: vanquish comics <list|search|show>")
	}
}

func handleCompare(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	first := fs.String("first", "", "first character id")
	second := fs.String("second", "", "second character id")
	_ = fs.Parse(args)
	if *first == "" || *second == "" {
		log.Fatal("both -first and -second character ids are required")
	}

	u, err := url.Parse(baseURL + "/api/compare")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := u.Query()
	qv.Set("first", *first)
	qv.Set("second", *second)
	u.RawQuery = qv.Encode()

	var resp map[string]any
	if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
		log.Fatalf("compare failed: %v", err)
	}
	printJSON(resp)
}

func handleFavorites(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "add":
		fs := flag.NewFlagSet("favorites add", flag.ExitOnError)
		kind := fs.String("kind", "character", "character or comic")
		refID := fs.String("id", "", "record id")
		name := fs.String("name", "", "display name")
		image := fs.String("image", "", "image url")
		_ = fs.Parse(args)
		if *refID == "" || *name == "" {
			log.Fatal("id and name are required")
		}

		payload := map[string]string{
			"kind":      *kind,
			"ref_id":    *refID,
			"name":      *name,
			"image_url": *image,
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/favorites", token, payload, &resp); err != nil {
			log.Fatalf("add failed: %v", err)
		}
		printJSON(resp)
	case "remove":
		fs := flag.NewFlagSet("favorites remove", flag.ExitOnError)
		kind := fs.String("kind", "character", "character or comic")
		refID := fs.String("id", "", "record id")
		_ = fs.Parse(args)
		if *refID == "" {
			log.Fatal("id is required")
		}

		endpoint := baseURL + "/users/favorites/" + url.PathEscape(*kind) + "/" + url.PathEscape(*refID)
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, endpoint, token, nil, &resp); err != nil {
			log.Fatalf("remove failed: %v", err)
		}
		printJSON(resp)
	case "list":
		fs := flag.NewFlagSet("favorites list", flag.ExitOnError)
		kind := fs.String("kind", "", "optional kind filter")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/users/favorites")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		if *kind != "" {
			qv := u.Query()
			qv.Set("kind", *kind)
			u.RawQuery = qv.Encode()
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, u.String(), token, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: vanquish favorites <add|remove|list>")
	}
}

func handleHistory(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "list":
		fs := flag.NewFlagSet("history list", flag.ExitOnError)
		limit := fs.Int("limit", 20, "max entries")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/users/history")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		u.RawQuery = qv.Encode()

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, u.String(), token, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "clear":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/users/history", token, nil, &resp); err != nil {
			log.Fatalf("clear failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: vanquish history <list|clear>")
	}
}

func handleWatch(baseURL string, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
	_ = fs.Parse(args)

	endpoint := *wsURL
	if endpoint == "" {
		var err error
		endpoint, err = websocketURL(baseURL, "/ws")
		if err != nil {
			log.Fatalf("ws url: %v", err)
		}
	}
	if err := runWebSocket(endpoint); err != nil {
		log.Fatalf("watch failed: %v", err)
	}
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[watch] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.vanquish-token.json"
	}
	return filepath.Join(home, ".vanquish", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, please login: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, please login")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("vanquish <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  auth login|register|logout")
	fmt.Println("  characters list|search|show")
	fmt.Println("  comics list|search|show")
	fmt.Println("  compare -first <id> -second <id>")
	fmt.Println("  favorites add|remove|list")
	fmt.Println("  history list|clear")
	fmt.Println("  watch")
}
