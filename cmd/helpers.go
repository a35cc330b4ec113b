package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	perrors "github.com/padlock-dev/padlock/internal/errors"
	"github.com/padlock-dev/padlock/internal/ui"
	"github.com/padlock-dev/padlock/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should be
// deferred to clean up.
//
// Spinner.FinalMSG values do NOT need trailing newlines: the cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without a colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// sessionPassphrase returns the cached session passphrase, prompting to
// unlock first when the session is locked. Ordinary unlock never asks for
// confirmation.
func sessionPassphrase() ([]byte, error) {
	if pass, err := session.Passphrase(); err == nil {
		return pass, nil
	}

	typed, err := utils.ReadPassphrase("Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	session.Unlock(typed)
	utils.Zero(typed)

	return session.Passphrase()
}

// lockOnAuthFailure clears the cached passphrase when an operation failed to
// open the database, forcing the next operation to re-prompt.
func lockOnAuthFailure(err error) {
	if errors.Is(err, perrors.ErrBadPassphrase) {
		Logger.Debugf("locking session after failed decryption")
		session.Lock()
	}
}

// failMessage formats an operation failure for a spinner final message.
func failMessage(what string, err error) string {
	return color.RedString("✗") + " " + what + "\n" +
		color.RedString("Error: ") + err.Error()
}
