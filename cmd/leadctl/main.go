package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/houseofcompanies/leadmail/internal/config"
	"github.com/houseofcompanies/leadmail/internal/email"
	"github.com/houseofcompanies/leadmail/internal/logger"
	"github.com/houseofcompanies/leadmail/internal/model"
	"github.com/houseofcompanies/leadmail/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "leadctl",
	Short: "Preview and send lead emails from the command line",
}

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render a lead payload to HTML (or plain text) on stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

var sendCmd = &cobra.Command{
	Use:   "send [file|-]",
	Short: "Send a lead email for a payload using the configured SMTP relay",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSend,
}

var (
	renderText    bool
	renderSubject bool
)

func init() {
	renderCmd.Flags().BoolVar(&renderText, "text", false, "render the plain-text alternative instead of HTML")
	renderCmd.Flags().BoolVar(&renderSubject, "subject", false, "print the subject line before the body")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sendCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// readPayload reads a lead payload from the named file, or stdin for "-" or no argument.
func readPayload(cmd *cobra.Command, args []string) (*model.LeadRequest, error) {
	var (
		body []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		body, err = io.ReadAll(cmd.InOrStdin())
	} else {
		body, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	return service.ParseLeadRequest(body)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	req, err := readPayload(cmd, args)
	if err != nil {
		return err
	}

	svc := service.NewLeadService(nil, cfg, nil, logger.Nop())
	msg, err := svc.Render(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if renderSubject {
		fmt.Fprintf(out, "Subject: %s\n\n", msg.Subject)
	}
	if renderText {
		fmt.Fprint(out, msg.TextBody)
		return nil
	}
	fmt.Fprint(out, msg.HTMLBody)
	return nil
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, "text")

	req, err := readPayload(cmd, args)
	if err != nil {
		return err
	}

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Address:    cfg.SMTP.Address,
		Password:   cfg.SMTP.Password,
		SenderName: cfg.SMTP.SenderName,
	}, log)

	result, err := service.NewLeadService(sender, cfg, nil, log).Submit(context.Background(), req)
	if err != nil {
		if result.Message != "" {
			return fmt.Errorf("%s: %w", result.Message, err)
		}
		return err
	}

	log.Info().Msg(result.Message)
	return nil
}
