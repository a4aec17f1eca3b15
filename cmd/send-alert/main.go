package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/agentics/gatekeeper/internal/infra/lark"
)

func main() {
	godotenv.Load()

	appID := os.Getenv("LARK_APP_ID")
	appSecret := os.Getenv("LARK_APP_SECRET")

	if appID == "" || appSecret == "" {
		fmt.Println("Error: LARK_APP_ID and LARK_APP_SECRET must be set")
		os.Exit(1)
	}

	chatID := os.Getenv("LARK_ALERT_CHAT")
	if len(os.Args) > 1 {
		chatID = os.Args[1]
	}
	if chatID == "" {
		fmt.Println("Usage: send-alert <chat_id> [message]")
		os.Exit(1)
	}

	message := "Gatekeeper test alert"
	if len(os.Args) > 2 {
		message = os.Args[2]
	}

	client := lark.NewClient(appID, appSecret)
	if err := client.SendText(context.Background(), chatID, message); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Alert sent successfully!")
}
