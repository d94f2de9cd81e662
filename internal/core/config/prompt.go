package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vietddude/nodepulse/internal/core/domain"
)

// ErrPromptAborted is returned when input ends before a prompt is answered.
var ErrPromptAborted = errors.New("input aborted")

// Prompter asks line-based questions on a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in and writing questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the trimmed answer.
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrPromptAborted
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question. Only "y" counts as yes.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// PromptMonitorConfig collects the bot token, chat and node label.
func PromptMonitorConfig(p *Prompter) (domain.MonitorConfig, error) {
	var mc domain.MonitorConfig
	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter your Telegram Bot API key: ", &mc.BotToken},
		{"Enter your Telegram Chat ID: ", &mc.ChatID},
		{"Enter a label or number for this node (e.g., 1, 2, 3): ", &mc.NodeID},
	}
	for _, f := range fields {
		v, err := p.Ask(f.label)
		if err != nil {
			return domain.MonitorConfig{}, err
		}
		*f.dst = v
	}
	return mc, nil
}
