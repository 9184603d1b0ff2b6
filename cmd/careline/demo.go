package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"careline/schema"
)

// demoQueries exercise both intents without user input.
var demoQueries = []string{
	"What are your clinic hours?",
	"Where is my order APT-12345?",
	"Do you accept insurance?",
	"Is my lab test LAB-67890 ready?",
	"How do I book an appointment?",
	"What's the status of prescription RX-11223?",
	"Do you offer telehealth?",
	"Check my appointment status",
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the fixed sample queries and print the routed answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		d, err := buildDispatcher(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		fmt.Println("DEMO MODE - Running sample queries...")
		for i, query := range demoQueries {
			result := d.Route(cmd.Context(), query)
			fmt.Printf("\nDemo Query %d: %s\n", i+1, query)
			fmt.Printf("Handled by: %s\n", agentDisplay(result.Intent))
			fmt.Printf("Answer:\n%s\n%s\n", result.Answer, divider)
		}
		fmt.Println("\nDemo complete!")
		return nil
	},
}

func agentDisplay(intent schema.Intent) string {
	if intent == schema.IntentOrderStatus {
		return "Order Status Agent"
	}
	return "FAQ Agent"
}
