package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"careline/common/logger"
	"careline/config"
	"careline/session"
)

const divider = "----------------------------------------------------------------------"
const banner = `
======================================================================
HEALTHCARE CUSTOMER SERVICE BOT
======================================================================
Ask about clinic hours, services, or check your order status!
Type 'help' for examples, 'quit' to exit.
======================================================================
`

const helpText = `
HELP - Example Questions:
----------------------------------------------------------------------
FAQ Questions:
  - What are your clinic hours?
  - Do you accept insurance?
  - How do I book an appointment?
  - Where are you located?

Order Status Questions (use real order IDs from the dataset):
  - Where is my order APT-12345?
  - Is my lab test LAB-67890 ready?
  - What's the status of prescription RX-11223?
----------------------------------------------------------------------
`

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive question loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		d, err := buildDispatcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		sessions, err := session.New(cfg.Session)
		if err != nil {
			return err
		}
		sess, err := sessions.Create()
		if err != nil {
			return err
		}

		fmt.Print(banner)
		fmt.Printf("Router ready in '%s' mode!\n\n", routerMode(cfg))

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("You: ")
			if !scanner.Scan() {
				break
			}
			query := strings.TrimSpace(scanner.Text())

			switch strings.ToLower(query) {
			case "quit", "exit", "q":
				fmt.Println("\nThank you for using our service. Goodbye!")
				return nil
			case "help":
				fmt.Print(helpText)
				continue
			case "":
				fmt.Println("Please enter a question.")
				continue
			}

			result := d.Route(cmd.Context(), query)
			fmt.Printf("\nHandled by: %s\n", agentDisplay(result.Intent))
			fmt.Printf("Answer:\n%s\n\n%s\n\n", result.Answer, divider)

			round := session.Round{
				Question:  query,
				Answer:    result.Answer,
				Intent:    result.Intent,
				Timestamp: time.Now(),
			}
			if err := sessions.Append(sess.ID, round); err != nil {
				logger.Warnf("chat: failed to record transcript round: %v", err)
			}
		}
		return scanner.Err()
	},
}

func routerMode(cfg *config.Config) string {
	if cfg.Router.Provider == "" {
		return "rule"
	}
	return cfg.Router.Provider
}

func cacheTTL(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Cache.TTLSeconds) * time.Second
}
