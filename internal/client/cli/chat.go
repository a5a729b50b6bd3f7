package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/devopschat/internal/client/client"
	"github.com/dmitrijs2005/devopschat/internal/client/utils"
)

var (
	getMultiline = GetMultiline
	download     = utils.DownloadFromPresignedURL
)

// Ask sends question to the assistant and prints the answer. An empty
// question opens a multi-line prompt.
func (a *App) Ask(ctx context.Context, question string) error {
	if strings.TrimSpace(question) == "" {
		q, err := getMultiline(a.reader, "Your question", a.out)
		if err != nil {
			return err
		}
		question = q
	}
	if question == "" {
		return errors.New("question is empty")
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	answer, err := a.api.Ask(ctx, a.userID, question)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\n%s\n\n", answer)
	return nil
}

// History prints the conversation so far, oldest first.
func (a *App) History(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msgs, degraded, err := a.api.History(ctx, a.userID)
	if err != nil {
		return err
	}

	if degraded {
		fmt.Fprintln(a.out, "Warning: history storage is unavailable, showing what could be read")
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No messages yet")
		return nil
	}

	for _, m := range msgs {
		who := "you"
		if m.Sender == "bot" {
			who = "bot"
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", m.Timestamp.Local().Format("2006-01-02 15:04:05"), who, m.Message)
	}
	return nil
}

// Export prints a time-limited download link for the transcript. When dest
// is set the transcript is also saved to that file.
func (a *App) Export(ctx context.Context, dest string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	url, err := a.api.Export(ctx, a.userID)
	if err != nil {
		if errors.Is(err, client.ErrExportDisabled) {
			fmt.Fprintln(a.out, "Export is not enabled on this server")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Transcript: %s\n", url)
	if dest == "" {
		return nil
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := download(ctx, url, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved to %s\n", dest)
	return nil
}
