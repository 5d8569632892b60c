package stickers

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// copyToClipboard copies text to the system clipboard. When no native
// clipboard is available it shells out directly, which also reaches
// clip.exe from WSL.
func copyToClipboard(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	return execCopy(text)
}

// execCopy pipes text into the platform clipboard tool.
// Uses pbcopy on macOS, xclip on Linux, clip.exe on Windows.
func execCopy(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, fall back to xsel, then WSL
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if _, err := exec.LookPath("xsel"); err == nil {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else if _, err := exec.LookPath("clip.exe"); err == nil {
			cmd = exec.Command("clip.exe")
		} else {
			return fmt.Errorf("no clipboard tool found (install xclip or xsel)")
		}
	case "windows":
		cmd = exec.Command("clip.exe")
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	if _, err := stdin.Write([]byte(text)); err != nil {
		return err
	}

	if err := stdin.Close(); err != nil {
		return err
	}

	return cmd.Wait()
}

// packLink returns the share link for a pack.
func packLink(p Pack) string {
	return fmt.Sprintf("https://signal.art/addstickers/#pack_id=%s&pack_key=%s", p.ID, p.Key)
}

// formatPackAsMarkdown formats a pack for the details pane.
func formatPackAsMarkdown(p Pack) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n", p.Title))
	sb.WriteString(fmt.Sprintf("**Author:** %s | **Stickers:** %d | **Status:** %s\n", p.Author, p.Count, p.Status))

	if p.Blessed {
		sb.WriteString("\n> Official pack\n")
	}

	if p.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(p.Description)
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n`%s`\n", packLink(p)))
	return sb.String()
}
