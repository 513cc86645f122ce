package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.Mode == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.Mode)
}

func (a *App) Root(ctx context.Context) {

	if !StdinIsTerminal() {
		log.Println("Case intake CLI needs an interactive terminal")
		return
	}

	log.Println("Welcome to the case intake CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Printf("intake %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Println("Available commands: (s)ubmit, ping, testmail, exit")

		case "s", "submit":
			if err := a.Submit(ctx); err != nil {
				log.Printf("error: %v", err)
			}

		case "ping":
			if err := a.service.Ping(ctx); err != nil {
				fmt.Println("Server unreachable:", err)
			} else {
				fmt.Println("Server is up.")
			}

		case "testmail":
			id, err := a.service.SendTest(ctx)
			if err != nil {
				log.Printf("error: %v", err)
			} else {
				fmt.Println("Test email sent, message id:", id)
			}

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
