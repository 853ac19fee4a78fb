package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"voice-ordering/internal/voiceorder"
)

const quitCommand = "/quit"

func newChatCmd() *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Hold an ordering conversation on stdin/stdout",
		Long: "Reads one user message per line until EOF or /quit. " +
			"When the assistant completes the order the extracted draft is printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := build(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			return runChat(ctx, a.VoiceOrder, customer, cmd.InOrStdin(), cmd.OutOrStdout(), isTerminal(cmd.InOrStdin()))
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name to address")
	return cmd
}

func runChat(ctx context.Context, uc voiceorder.UseCase, customer string, in io.Reader, out io.Writer, interactive bool) error {
	started, err := uc.Start(ctx, voiceorder.StartInput{CustomerName: customer})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	sessionID := started.SessionID
	defer func() { _ = uc.End(context.WithoutCancel(ctx), sessionID) }()

	fmt.Fprintf(out, "assistant: %s\n", started.AssistantText)

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == quitCommand {
			return nil
		}

		turn, err := uc.Turn(ctx, voiceorder.TurnInput{
			SessionID:    sessionID,
			UserText:     line,
			CustomerName: customer,
		})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if turn.Recovered {
			sessionID = turn.SessionID
			fmt.Fprintf(out, "(session restarted as %s)\n", sessionID)
		}

		fmt.Fprintf(out, "assistant: %s\n", turn.DisplayText)
		if turn.IsOrderComplete && turn.Draft != nil {
			writeDraft(out, *turn.Draft)
		}
	}
	return scanner.Err()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
